package model

import "math"

// Stats aggregates ticket counts per status
type Stats struct {
	Total                int `json:"total"`
	Open                 int `json:"open"`
	InProgress           int `json:"inProgress"`
	Closed               int `json:"closed"`
	OpenPercentage       int `json:"openPercentage"`
	InProgressPercentage int `json:"inProgressPercentage"`
	ClosedPercentage     int `json:"closedPercentage"`
}

// ComputeStats counts tickets by status
func ComputeStats(tickets []Ticket) Stats {
	s := Stats{Total: len(tickets)}
	for _, t := range tickets {
		switch t.Status {
		case StatusOpen:
			s.Open++
		case StatusInProgress:
			s.InProgress++
		case StatusClosed:
			s.Closed++
		}
	}
	s.OpenPercentage = Percentage(s.Open, s.Total)
	s.InProgressPercentage = Percentage(s.InProgress, s.Total)
	s.ClosedPercentage = Percentage(s.Closed, s.Total)
	return s
}

// Percentage returns count/total as a rounded whole percent, 0 when total is 0
func Percentage(count, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(count) / float64(total) * 100))
}
