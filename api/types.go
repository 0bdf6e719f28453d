// Package api holds the JSON bodies served by the statistics endpoints.
package api

import (
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

type Filter string

const (
	Daily   Filter = "daily"
	Weekly  Filter = "weekly"
	Monthly Filter = "monthly"
)

// StatisticsParams are the query parameters of the time bucketed endpoints.
// A nil Filter means the parameter was not sent.
type StatisticsParams struct {
	Filter *string `json:"filter,omitempty" validate:"omitempty,granularity"`
}

type ErrorResponse struct {
	Message   string    `json:"message"`
	Error     string    `json:"error,omitempty"`
	RequestId string    `json:"requestId"`
	Timestamp time.Time `json:"timestamp"`
}

type SystemInfo struct {
	Version     string `json:"version"`
	Environment string `json:"environment"`
}

type HealthcheckResponse struct {
	Status     string     `json:"status"`
	SystemInfo SystemInfo `json:"systemInfo"`
}

type TotalRevenue struct {
	TotalRevenue float64 `json:"totalRevenue"`
}

type TotalRevenueResponse struct {
	Data TotalRevenue `json:"data"`
}

type CinemaRevenue struct {
	CinemaId    int     `json:"cinemaId"`
	CinemaTitle string  `json:"cinemaTitle"`
	Revenue     float64 `json:"revenue"`
}

type RevenueByCinemaResponse struct {
	Data []CinemaRevenue `json:"data"`
}

type RevenueBucket struct {
	Date        string  `json:"date"`
	Revenue     float64 `json:"revenue"`
	TicketCount int     `json:"ticketCount"`
}

type RevenueByTimeResponse struct {
	Data   []RevenueBucket `json:"data"`
	Filter Filter          `json:"filter"`
}

type BookingBucket struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

type BookingCountByTimeResponse struct {
	Data   []BookingBucket `json:"data"`
	Filter Filter          `json:"filter"`
}

type MovieTicketStat struct {
	MovieId     int     `json:"movieId"`
	MovieTitle  string  `json:"movieTitle"`
	MoviePoster string  `json:"moviePoster"`
	TicketCount int     `json:"ticketCount"`
	Revenue     float64 `json:"revenue"`
}

type MovieStatistics struct {
	AllMovies []MovieTicketStat `json:"allMovies"`
	Top5      []MovieTicketStat `json:"top5"`
}

type MovieStatisticsResponse struct {
	Data MovieStatistics `json:"data"`
}

type Showtime struct {
	Id          int                `json:"id"`
	Date        openapi_types.Date `json:"date"`
	Time        string             `json:"time"`
	MovieTitle  string             `json:"movieTitle"`
	CinemaTitle string             `json:"cinemaTitle"`
}

type WeekShowtimes struct {
	StartDate openapi_types.Date `json:"startDate"`
	EndDate   openapi_types.Date `json:"endDate"`
	Count     int                `json:"count"`
	Showtimes []Showtime         `json:"showtimes"`
}

type WeekShowtimesResponse struct {
	Data WeekShowtimes `json:"data"`
}

type Dashboard struct {
	TotalRevenue       float64         `json:"totalRevenue"`
	RevenueByCinema    []CinemaRevenue `json:"revenueByCinema"`
	RevenueByTime      []RevenueBucket `json:"revenueByTime"`
	BookingCountByTime []BookingBucket `json:"bookingCountByTime"`
	MovieStatistics    MovieStatistics `json:"movieStatistics"`
	ShowtimesThisWeek  WeekShowtimes   `json:"showtimesThisWeek"`
}

type DashboardResponse struct {
	Data   Dashboard `json:"data"`
	Filter Filter    `json:"filter"`
}
