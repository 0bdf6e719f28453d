package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type Ticket struct {
	ID          int
	ScreeningID int
	PurchasedAt time.Time
	Seats       []TicketSeat
	Validated   bool
}

type TicketSeat struct {
	Row        string
	Col        int
	SeatTypeID int
}

type SeatType struct {
	ID    int
	Title string
	Price decimal.Decimal
}

type Screening struct {
	ID                   int
	Date                 time.Time
	ScheduledScreeningID int
}

// ScheduledScreening is the recurring weekly slot a Screening is an instance of.
type ScheduledScreening struct {
	ID       int
	MovieID  int
	CinemaID int
	Time     string
	Weekday  time.Weekday
}

type Cinema struct {
	ID    int
	Title string
}

// StatisticsRepository is the read-only view over the booking and catalog
// tables that the analytics engine aggregates.
type StatisticsRepository interface {
	GetTickets(ctx context.Context) ([]Ticket, error)
	GetSeatTypes(ctx context.Context) ([]SeatType, error)
	GetScreenings(ctx context.Context) ([]Screening, error)
	GetScreeningsBetween(ctx context.Context, start, end time.Time) ([]Screening, error)
	GetScheduledScreenings(ctx context.Context) ([]ScheduledScreening, error)
	GetMovies(ctx context.Context) ([]Movie, error)
	GetCinemas(ctx context.Context) ([]Cinema, error)
}
