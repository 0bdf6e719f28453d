package app

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/metinatakli/cinema-statistics/api"
	"github.com/metinatakli/cinema-statistics/internal/domain"
	appvalidator "github.com/metinatakli/cinema-statistics/internal/validator"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

func (app *Application) GetTotalRevenue(w http.ResponseWriter, r *http.Request) {
	total, err := app.statistics.TotalRevenue(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.TotalRevenueResponse{
		Data: api.TotalRevenue{TotalRevenue: total.InexactFloat64()},
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetRevenueByCinema(w http.ResponseWriter, r *http.Request) {
	revenues, err := app.statistics.RevenueByCinema(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.RevenueByCinemaResponse{
		Data: toApiCinemaRevenues(revenues),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetRevenueByTime(w http.ResponseWriter, r *http.Request) {
	granularity, ok := app.readGranularity(w, r)
	if !ok {
		return
	}

	buckets, err := app.statistics.RevenueByTime(r.Context(), granularity)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.RevenueByTimeResponse{
		Data:   toApiRevenueBuckets(buckets),
		Filter: api.Filter(granularity),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetBookingCountByTime(w http.ResponseWriter, r *http.Request) {
	granularity, ok := app.readGranularity(w, r)
	if !ok {
		return
	}

	buckets, err := app.statistics.BookingCountByTime(r.Context(), granularity)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.BookingCountByTimeResponse{
		Data:   toApiBookingBuckets(buckets),
		Filter: api.Filter(granularity),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetMovieStatistics(w http.ResponseWriter, r *http.Request) {
	stats, err := app.statistics.MovieStatistics(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.MovieStatisticsResponse{
		Data: toApiMovieStatistics(stats),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetShowtimesThisWeek(w http.ResponseWriter, r *http.Request) {
	showtimes, err := app.statistics.ShowtimesThisWeek(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.WeekShowtimesResponse{
		Data: toApiWeekShowtimes(showtimes),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// GetDashboard answers with every statistic at once or with an error; a
// failure of any part fails the whole response.
func (app *Application) GetDashboard(w http.ResponseWriter, r *http.Request) {
	granularity, ok := app.readGranularity(w, r)
	if !ok {
		return
	}

	ctx := r.Context()
	if app.config.DashboardTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, app.config.DashboardTimeout)
		defer cancel()
	}

	app.contextGetLogger(r).Info("building dashboard",
		"user_id", app.contextGetUserId(r),
		"filter", string(granularity))

	dashboard, err := app.statistics.Dashboard(ctx, granularity)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.DashboardResponse{
		Data:   toApiDashboard(dashboard),
		Filter: api.Filter(granularity),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// readGranularity validates the filter query parameter. It writes a 400
// response and returns false when the value is not accepted.
func (app *Application) readGranularity(w http.ResponseWriter, r *http.Request) (domain.Granularity, bool) {
	var params api.StatisticsParams

	query := r.URL.Query()
	if query.Has("filter") {
		filter := query.Get("filter")
		params.Filter = &filter
	}

	err := app.validator.Struct(params)
	if err != nil {
		logger := app.contextGetLogger(r).With("filter", query.Get("filter"))

		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			for _, fe := range validationErrs {
				logger = logger.With("issue", appvalidator.ValidationMessage(fe))
			}
		}

		logger.Warn("rejected statistics filter")
		app.badRequestResponse(w, r, domain.ErrInvalidGranularity)
		return "", false
	}

	var filter string
	if params.Filter != nil {
		filter = *params.Filter
	}

	granularity, err := domain.ParseGranularity(filter)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return "", false
	}

	return granularity, true
}

func toApiCinemaRevenues(revenues []domain.CinemaRevenue) []api.CinemaRevenue {
	result := make([]api.CinemaRevenue, len(revenues))

	for i, rev := range revenues {
		result[i] = api.CinemaRevenue{
			CinemaId:    rev.CinemaID,
			CinemaTitle: rev.CinemaTitle,
			Revenue:     rev.Revenue.InexactFloat64(),
		}
	}

	return result
}

func toApiRevenueBuckets(buckets []domain.RevenueBucket) []api.RevenueBucket {
	result := make([]api.RevenueBucket, len(buckets))

	for i, b := range buckets {
		result[i] = api.RevenueBucket{
			Date:        b.Date,
			Revenue:     b.Revenue.InexactFloat64(),
			TicketCount: b.TicketCount,
		}
	}

	return result
}

func toApiBookingBuckets(buckets []domain.BookingBucket) []api.BookingBucket {
	result := make([]api.BookingBucket, len(buckets))

	for i, b := range buckets {
		result[i] = api.BookingBucket{Date: b.Date, Count: b.Count}
	}

	return result
}

func toApiMovieStats(stats []domain.MovieTicketStat) []api.MovieTicketStat {
	result := make([]api.MovieTicketStat, len(stats))

	for i, s := range stats {
		result[i] = api.MovieTicketStat{
			MovieId:     s.MovieID,
			MovieTitle:  s.MovieTitle,
			MoviePoster: s.MoviePoster,
			TicketCount: s.TicketCount,
			Revenue:     s.Revenue.InexactFloat64(),
		}
	}

	return result
}

func toApiMovieStatistics(stats domain.MovieStatistics) api.MovieStatistics {
	return api.MovieStatistics{
		AllMovies: toApiMovieStats(stats.AllMovies),
		Top5:      toApiMovieStats(stats.Top5),
	}
}

func toApiWeekShowtimes(week domain.WeekShowtimes) api.WeekShowtimes {
	showtimes := make([]api.Showtime, len(week.Showtimes))

	for i, s := range week.Showtimes {
		showtimes[i] = api.Showtime{
			Id:          s.ID,
			Date:        openapi_types.Date{Time: s.Date},
			Time:        s.Time,
			MovieTitle:  s.MovieTitle,
			CinemaTitle: s.CinemaTitle,
		}
	}

	return api.WeekShowtimes{
		StartDate: openapi_types.Date{Time: week.StartDate},
		EndDate:   openapi_types.Date{Time: week.EndDate},
		Count:     week.Count,
		Showtimes: showtimes,
	}
}

func toApiDashboard(dashboard *domain.Dashboard) api.Dashboard {
	return api.Dashboard{
		TotalRevenue:       dashboard.TotalRevenue.InexactFloat64(),
		RevenueByCinema:    toApiCinemaRevenues(dashboard.RevenueByCinema),
		RevenueByTime:      toApiRevenueBuckets(dashboard.RevenueByTime),
		BookingCountByTime: toApiBookingBuckets(dashboard.BookingCountByTime),
		MovieStatistics:    toApiMovieStatistics(dashboard.MovieStatistics),
		ShowtimesThisWeek:  toApiWeekShowtimes(dashboard.ShowtimesThisWeek),
	}
}
