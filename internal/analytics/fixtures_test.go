package analytics

import (
	"time"

	"github.com/metinatakli/cinema-statistics/internal/domain"
	"github.com/metinatakli/cinema-statistics/internal/mocks"
	"github.com/shopspring/decimal"
)

const (
	cinemaA = 1
	cinemaB = 2

	movieDune    = 10
	movieArrival = 11

	seatEconomy  = 100
	seatStandard = 101
	seatPremium  = 102
	seatVIP      = 103
)

func dec(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

func seats(typeIDs ...int) []domain.TicketSeat {
	result := make([]domain.TicketSeat, len(typeIDs))
	for i, id := range typeIDs {
		result[i] = domain.TicketSeat{Row: "A", Col: i + 1, SeatTypeID: id}
	}
	return result
}

// newFixtureRepo builds the three ticket example: cinema A sells [10,20] and
// [15], cinema B sells [5,5], all on 2024-03-12.
func newFixtureRepo() *mocks.MockStatisticsRepo {
	day := time.Date(2024, time.March, 12, 10, 30, 0, 0, time.UTC)

	return &mocks.MockStatisticsRepo{
		SeatTypes: []domain.SeatType{
			{ID: seatEconomy, Title: "Economy", Price: dec("5")},
			{ID: seatStandard, Title: "Standard", Price: dec("10")},
			{ID: seatPremium, Title: "Premium", Price: dec("15")},
			{ID: seatVIP, Title: "VIP", Price: dec("20")},
		},
		Cinemas: []domain.Cinema{
			{ID: cinemaA, Title: "Cinema A"},
			{ID: cinemaB, Title: "Cinema B"},
		},
		Movies: []domain.Movie{
			{ID: movieDune, Title: "Dune", PosterUrl: "https://example.com/dune.jpg"},
			{ID: movieArrival, Title: "Arrival", PosterUrl: "https://example.com/arrival.jpg"},
		},
		ScheduledScreenings: []domain.ScheduledScreening{
			{ID: 1000, MovieID: movieDune, CinemaID: cinemaA, Time: "18:00", Weekday: time.Tuesday},
			{ID: 1001, MovieID: movieArrival, CinemaID: cinemaB, Time: "20:30", Weekday: time.Tuesday},
		},
		Screenings: []domain.Screening{
			{ID: 500, Date: time.Date(2024, time.March, 12, 0, 0, 0, 0, time.UTC), ScheduledScreeningID: 1000},
			{ID: 501, Date: time.Date(2024, time.March, 12, 0, 0, 0, 0, time.UTC), ScheduledScreeningID: 1001},
		},
		Tickets: []domain.Ticket{
			{ID: 1, ScreeningID: 500, PurchasedAt: day, Seats: seats(seatStandard, seatVIP)},
			{ID: 2, ScreeningID: 500, PurchasedAt: day.Add(time.Hour), Seats: seats(seatPremium)},
			{ID: 3, ScreeningID: 501, PurchasedAt: day.Add(2 * time.Hour), Seats: seats(seatEconomy, seatEconomy)},
		},
	}
}
