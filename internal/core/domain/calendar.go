package domain

// EventDay is one Wednesday of the navigable window, flagged relative to now.
type EventDay struct {
	Date    string `json:"date"`
	IsPast  bool   `json:"isPast"`
	IsToday bool   `json:"isToday"`
}

// CalendarWindow is the initial window around Anchor, the current or next
// Wednesday.
type CalendarWindow struct {
	Anchor string     `json:"anchor"`
	Dates  []EventDay `json:"dates"`
}
