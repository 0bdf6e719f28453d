package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type Granularity string

const (
	GranularityDaily   Granularity = "daily"
	GranularityWeekly  Granularity = "weekly"
	GranularityMonthly Granularity = "monthly"
)

var Granularities = []Granularity{GranularityDaily, GranularityWeekly, GranularityMonthly}

// ParseGranularity maps a request filter to a Granularity. An empty filter
// means daily.
func ParseGranularity(s string) (Granularity, error) {
	if s == "" {
		return GranularityDaily, nil
	}

	for _, g := range Granularities {
		if string(g) == s {
			return g, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrInvalidGranularity, s)
}

func (g Granularity) Valid() bool {
	switch g {
	case GranularityDaily, GranularityWeekly, GranularityMonthly:
		return true
	}

	return false
}

type CinemaRevenue struct {
	CinemaID    int
	CinemaTitle string
	Revenue     decimal.Decimal
}

type RevenueBucket struct {
	Date        string
	Revenue     decimal.Decimal
	TicketCount int
}

type BookingBucket struct {
	Date  string
	Count int
}

type MovieTicketStat struct {
	MovieID     int
	MovieTitle  string
	MoviePoster string
	TicketCount int
	Revenue     decimal.Decimal
}

type MovieStatistics struct {
	AllMovies []MovieTicketStat
	Top5      []MovieTicketStat
}

type WeekShowtime struct {
	ID          int
	Date        time.Time
	Time        string
	MovieTitle  string
	CinemaTitle string
}

type WeekShowtimes struct {
	StartDate time.Time
	EndDate   time.Time
	Count     int
	Showtimes []WeekShowtime
}

type Dashboard struct {
	TotalRevenue       decimal.Decimal
	RevenueByCinema    []CinemaRevenue
	RevenueByTime      []RevenueBucket
	BookingCountByTime []BookingBucket
	MovieStatistics    MovieStatistics
	ShowtimesThisWeek  WeekShowtimes
}
