package integration_test

import "time"

const (
	TestStaffUserId    = 3
	TestCustomerUserId = 7

	TestCinemaA = "Cinema A"
	TestCinemaB = "Cinema B"

	TestMovieDune        = "Dune"
	TestMovieArrival     = "Arrival"
	TestDunePosterUrl    = "https://example.com/dune.jpg"
	TestArrivalPosterUrl = "https://example.com/arrival.jpg"
)

// Tickets are sold on 2024-03-12; screenings happen today so that they fall
// inside the current week.
var (
	TestPurchasedAt   = time.Date(2024, time.March, 12, 10, 30, 0, 0, time.UTC)
	TestScreeningDate = time.Now().UTC().Format("2006-01-02")
)
