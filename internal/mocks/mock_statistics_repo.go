package mocks

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/metinatakli/cinema-statistics/internal/domain"
)

// MockStatisticsRepo serves fixed entity slices unless a Func override is set.
// Calls counts every read, including failed ones.
type MockStatisticsRepo struct {
	domain.StatisticsRepository

	Tickets             []domain.Ticket
	SeatTypes           []domain.SeatType
	Screenings          []domain.Screening
	ScheduledScreenings []domain.ScheduledScreening
	Movies              []domain.Movie
	Cinemas             []domain.Cinema

	GetTicketsFunc             func(ctx context.Context) ([]domain.Ticket, error)
	GetSeatTypesFunc           func(ctx context.Context) ([]domain.SeatType, error)
	GetScreeningsFunc          func(ctx context.Context) ([]domain.Screening, error)
	GetScreeningsBetweenFunc   func(ctx context.Context, start, end time.Time) ([]domain.Screening, error)
	GetScheduledScreeningsFunc func(ctx context.Context) ([]domain.ScheduledScreening, error)
	GetMoviesFunc              func(ctx context.Context) ([]domain.Movie, error)
	GetCinemasFunc             func(ctx context.Context) ([]domain.Cinema, error)

	Calls atomic.Int64
}

func (m *MockStatisticsRepo) GetTickets(ctx context.Context) ([]domain.Ticket, error) {
	m.Calls.Add(1)
	if m.GetTicketsFunc != nil {
		return m.GetTicketsFunc(ctx)
	}
	return m.Tickets, nil
}

func (m *MockStatisticsRepo) GetSeatTypes(ctx context.Context) ([]domain.SeatType, error) {
	m.Calls.Add(1)
	if m.GetSeatTypesFunc != nil {
		return m.GetSeatTypesFunc(ctx)
	}
	return m.SeatTypes, nil
}

func (m *MockStatisticsRepo) GetScreenings(ctx context.Context) ([]domain.Screening, error) {
	m.Calls.Add(1)
	if m.GetScreeningsFunc != nil {
		return m.GetScreeningsFunc(ctx)
	}
	return m.Screenings, nil
}

func (m *MockStatisticsRepo) GetScreeningsBetween(ctx context.Context, start, end time.Time) ([]domain.Screening, error) {
	m.Calls.Add(1)
	if m.GetScreeningsBetweenFunc != nil {
		return m.GetScreeningsBetweenFunc(ctx, start, end)
	}
	return m.Screenings, nil
}

func (m *MockStatisticsRepo) GetScheduledScreenings(ctx context.Context) ([]domain.ScheduledScreening, error) {
	m.Calls.Add(1)
	if m.GetScheduledScreeningsFunc != nil {
		return m.GetScheduledScreeningsFunc(ctx)
	}
	return m.ScheduledScreenings, nil
}

func (m *MockStatisticsRepo) GetMovies(ctx context.Context) ([]domain.Movie, error) {
	m.Calls.Add(1)
	if m.GetMoviesFunc != nil {
		return m.GetMoviesFunc(ctx)
	}
	return m.Movies, nil
}

func (m *MockStatisticsRepo) GetCinemas(ctx context.Context) ([]domain.Cinema, error) {
	m.Calls.Add(1)
	if m.GetCinemasFunc != nil {
		return m.GetCinemasFunc(ctx)
	}
	return m.Cinemas, nil
}
