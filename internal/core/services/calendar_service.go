package services

import (
	"time"

	"github.com/vncsmyrnk/footvote/internal/calendar"
	"github.com/vncsmyrnk/footvote/internal/core/domain"
	"github.com/vncsmyrnk/footvote/internal/core/ports"
)

type calendarService struct {
	loc *time.Location
	now func() time.Time
}

// NewCalendarService evaluates "today" as now() seen in loc.
func NewCalendarService(loc *time.Location, now func() time.Time) ports.CalendarService {
	if now == nil {
		now = time.Now
	}
	return &calendarService{
		loc: loc,
		now: now,
	}
}

func (s *calendarService) today() time.Time {
	return s.now().In(s.loc)
}

func (s *calendarService) Anchor() string {
	return calendar.FormatDate(calendar.CurrentOrNextWednesday(s.today()))
}

// Window reads the clock once so the anchor always belongs to the dates.
func (s *calendarService) Window(count int) domain.CalendarWindow {
	ref := s.today()
	return domain.CalendarWindow{
		Anchor: calendar.FormatDate(calendar.CurrentOrNextWednesday(ref)),
		Dates:  s.eventDays(calendar.Window(ref, count), ref),
	}
}

func (s *calendarService) ExtendPast(from string, count int) ([]domain.EventDay, error) {
	d, err := validateWednesday("from", from, s.loc)
	if err != nil {
		return nil, err
	}
	return s.eventDays(calendar.ExtendPast(d, count), s.today()), nil
}

func (s *calendarService) ExtendFuture(from string, count int) ([]domain.EventDay, error) {
	d, err := validateWednesday("from", from, s.loc)
	if err != nil {
		return nil, err
	}
	return s.eventDays(calendar.ExtendFuture(d, count), s.today()), nil
}

func (s *calendarService) IsPastDate(date string) (bool, error) {
	d, err := validateDate("date", date, s.loc)
	if err != nil {
		return false, err
	}
	return calendar.IsPast(d, s.today()), nil
}

func (s *calendarService) IsTodayDate(date string) (bool, error) {
	d, err := validateDate("date", date, s.loc)
	if err != nil {
		return false, err
	}
	return calendar.IsToday(d, s.today()), nil
}

func (s *calendarService) eventDays(dates []time.Time, ref time.Time) []domain.EventDay {
	days := make([]domain.EventDay, 0, len(dates))
	for _, d := range dates {
		days = append(days, domain.EventDay{
			Date:    calendar.FormatDate(d),
			IsPast:  calendar.IsPast(d, ref),
			IsToday: calendar.IsToday(d, ref),
		})
	}
	return days
}
