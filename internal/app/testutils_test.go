package app

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alexedwards/scs/v2"
	"github.com/metinatakli/cinema-statistics/api"
	"github.com/metinatakli/cinema-statistics/internal/analytics"
	"github.com/metinatakli/cinema-statistics/internal/domain"
	"github.com/metinatakli/cinema-statistics/internal/mocks"
	"github.com/metinatakli/cinema-statistics/internal/validator"
	"github.com/shopspring/decimal"
)

// testNow falls on Wednesday 2024-03-13, inside the week of the fixture
// screenings.
var testNow = time.Date(2024, time.March, 13, 9, 0, 0, 0, time.UTC)

func newTestApplication(repo domain.StatisticsRepository, opts ...func(*Application)) *Application {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	app := &Application{
		config:         Config{Env: "test"},
		validator:      validator.NewValidator(),
		logger:         logger,
		sessionManager: scs.New(),
		statistics: analytics.NewEngine(repo,
			analytics.WithLogger(logger),
			analytics.WithClock(func() time.Time { return testNow }),
		),
	}

	for _, opt := range opts {
		opt(app)
	}

	return app
}

// newTestRepo sells [10,20] and [15] at cinema 1 and [5,5] at cinema 2, all
// on 2024-03-12.
func newTestRepo() *mocks.MockStatisticsRepo {
	day := time.Date(2024, time.March, 12, 10, 30, 0, 0, time.UTC)
	screeningDate := time.Date(2024, time.March, 12, 0, 0, 0, 0, time.UTC)

	return &mocks.MockStatisticsRepo{
		SeatTypes: []domain.SeatType{
			{ID: 1, Title: "Economy", Price: decimal.NewFromInt(5)},
			{ID: 2, Title: "Standard", Price: decimal.NewFromInt(10)},
			{ID: 3, Title: "Premium", Price: decimal.NewFromInt(15)},
			{ID: 4, Title: "VIP", Price: decimal.NewFromInt(20)},
		},
		Cinemas: []domain.Cinema{
			{ID: 1, Title: "Cinema A"},
			{ID: 2, Title: "Cinema B"},
		},
		Movies: []domain.Movie{
			{ID: 10, Title: "Dune", PosterUrl: "https://example.com/dune.jpg"},
			{ID: 11, Title: "Arrival", PosterUrl: "https://example.com/arrival.jpg"},
		},
		ScheduledScreenings: []domain.ScheduledScreening{
			{ID: 100, MovieID: 10, CinemaID: 1, Time: "18:00", Weekday: time.Tuesday},
			{ID: 101, MovieID: 11, CinemaID: 2, Time: "20:30", Weekday: time.Tuesday},
		},
		Screenings: []domain.Screening{
			{ID: 500, Date: screeningDate, ScheduledScreeningID: 100},
			{ID: 501, Date: screeningDate, ScheduledScreeningID: 101},
		},
		Tickets: []domain.Ticket{
			{ID: 1, ScreeningID: 500, PurchasedAt: day, Seats: []domain.TicketSeat{
				{Row: "A", Col: 1, SeatTypeID: 2},
				{Row: "A", Col: 2, SeatTypeID: 4},
			}},
			{ID: 2, ScreeningID: 500, PurchasedAt: day.Add(time.Hour), Seats: []domain.TicketSeat{
				{Row: "B", Col: 1, SeatTypeID: 3},
			}},
			{ID: 3, ScreeningID: 501, PurchasedAt: day.Add(2 * time.Hour), Seats: []domain.TicketSeat{
				{Row: "C", Col: 1, SeatTypeID: 1},
				{Row: "C", Col: 2, SeatTypeID: 1},
			}},
		},
	}
}

// withSession stores a session for the given user and role and attaches its
// cookie to r.
func withSession(t *testing.T, app *Application, r *http.Request, userId int, role Role) *http.Request {
	t.Helper()

	ctx, err := app.sessionManager.Load(context.Background(), "")
	if err != nil {
		t.Fatalf("Failed to load session: %v", err)
	}

	app.sessionManager.Put(ctx, SessionKeyUserId.String(), userId)
	app.sessionManager.Put(ctx, SessionKeyRole.String(), string(role))

	token, _, err := app.sessionManager.Commit(ctx)
	if err != nil {
		t.Fatalf("Failed to commit session: %v", err)
	}

	r.AddCookie(&http.Cookie{Name: app.sessionManager.Cookie.Name, Value: token})

	return r
}

func executeRequest(t *testing.T, app *Application, r *http.Request) *httptest.ResponseRecorder {
	t.Helper()

	w := httptest.NewRecorder()
	app.Routes().ServeHTTP(w, r)

	return w
}

func staffRequest(t *testing.T, app *Application, url string) *http.Request {
	r := httptest.NewRequest(http.MethodGet, url, nil)
	return withSession(t, app, r, 1, RoleStaff)
}

func decodeErrorResponse(t *testing.T, w *httptest.ResponseRecorder) api.ErrorResponse {
	t.Helper()

	var errorResp api.ErrorResponse
	if err := json.NewDecoder(w.Body).Decode(&errorResp); err != nil {
		t.Fatalf("Failed to decode error response: %v", err)
	}

	return errorResp
}
