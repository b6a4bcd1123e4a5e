package domain

import (
	"time"

	"github.com/google/uuid"
)

type Attendance string

const (
	AttendanceYes Attendance = "yes"
	AttendanceNo  Attendance = "no"
)

// Attendances is the closed set of attendance values, in display order.
// Schema checks, request validation and aggregation all derive from it.
var Attendances = []Attendance{AttendanceYes, AttendanceNo}

func (a Attendance) Valid() bool {
	for _, v := range Attendances {
		if a == v {
			return true
		}
	}
	return false
}

// Attending reports whether voters with this value count towards the headcount.
func (a Attendance) Attending() bool {
	return a == AttendanceYes
}

type MinPlayers string

const (
	MinPlayersAny   MinPlayers = "any"
	MinPlayersSix   MinPlayers = "6"
	MinPlayersEight MinPlayers = "8"
)

var MinPlayersOptions = []MinPlayers{MinPlayersAny, MinPlayersSix, MinPlayersEight}

func (m MinPlayers) Valid() bool {
	for _, v := range MinPlayersOptions {
		if m == v {
			return true
		}
	}
	return false
}

const (
	MaxGuests      = 10
	MaxUserNameLen = 100
)

type Vote struct {
	ID         uuid.UUID  `json:"id"`
	UserName   string     `json:"user_name"`
	VoteDate   string     `json:"vote_date"`
	Attendance Attendance `json:"attendance"`
	MinPlayers MinPlayers `json:"min_players"`
	Guests     int        `json:"guests"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}
