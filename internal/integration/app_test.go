package integration_test

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/cinema-statistics/internal/app"
	"github.com/stretchr/testify/require"
)

type TestApp struct {
	App *app.Application
	DB  *pgxpool.Pool
}

func newTestApp(cfg app.Config) (*TestApp, error) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	application, err := app.NewApplication(cfg, logger)
	if err != nil {
		return nil, err
	}

	db, err := pgxpool.New(context.Background(), cfg.DB.DSN)
	if err != nil {
		application.Close()
		return nil, err
	}

	return &TestApp{
		App: application,
		DB:  db,
	}, nil
}

// sessionCookies stores a session the way the authentication service does
// and returns the cookie that refers to it.
func (ta *TestApp) sessionCookies(t testing.TB, userId int, role app.Role) []http.Cookie {
	sessionManager := ta.App.SessionManager()

	ctx, err := sessionManager.Load(context.Background(), "")
	require.NoError(t, err)

	sessionManager.Put(ctx, app.SessionKeyUserId.String(), userId)
	sessionManager.Put(ctx, app.SessionKeyRole.String(), string(role))

	token, _, err := sessionManager.Commit(ctx)
	require.NoError(t, err)

	return []http.Cookie{{Name: sessionManager.Cookie.Name, Value: token}}
}
