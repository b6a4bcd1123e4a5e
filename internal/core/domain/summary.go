package domain

import "fmt"

type VoterDetail struct {
	Name       string     `json:"name"`
	MinPlayers MinPlayers `json:"minPlayers"`
	Guests     int        `json:"guests"`
}

// AttendanceSummary groups the votes sharing one attendance value.
// Users and UsersWithMinPlayers are aligned and in vote creation order.
type AttendanceSummary struct {
	Count               int           `json:"count"`
	Users               []string      `json:"users"`
	UsersWithMinPlayers []VoterDetail `json:"usersWithMinPlayers"`
	TotalPlayers        int           `json:"totalPlayers"`
}

// VoteSummary has an entry for every value in Attendances.
type VoteSummary map[Attendance]AttendanceSummary

// Summarize aggregates the votes of a single date. votes must be in
// creation order; that order is kept inside every group.
func Summarize(votes []Vote) (VoteSummary, error) {
	summary := make(VoteSummary, len(Attendances))
	for _, a := range Attendances {
		summary[a] = AttendanceSummary{
			Users:               []string{},
			UsersWithMinPlayers: []VoterDetail{},
		}
	}

	for _, v := range votes {
		group, ok := summary[v.Attendance]
		if !ok {
			return nil, fmt.Errorf("%w: %q (user %s, date %s)", ErrInvalidAttendance, v.Attendance, v.UserName, v.VoteDate)
		}

		group.Count++
		group.Users = append(group.Users, v.UserName)
		group.UsersWithMinPlayers = append(group.UsersWithMinPlayers, VoterDetail{
			Name:       v.UserName,
			MinPlayers: v.MinPlayers,
			Guests:     v.Guests,
		})
		if v.Attendance.Attending() {
			group.TotalPlayers += 1 + v.Guests
		}
		summary[v.Attendance] = group
	}

	return summary, nil
}

// Headcount is the number of people expected to play.
func (s VoteSummary) Headcount() int {
	total := 0
	for a, group := range s {
		if a.Attending() {
			total += group.TotalPlayers
		}
	}
	return total
}
