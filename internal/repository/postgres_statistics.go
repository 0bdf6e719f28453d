package repository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/cinema-statistics/internal/domain"
)

// PostgresStatisticsRepository reads the entity tables the statistics are
// computed from. Every method is a single independent read.
type PostgresStatisticsRepository struct {
	db *pgxpool.Pool
}

func NewPostgresStatisticsRepository(db *pgxpool.Pool) *PostgresStatisticsRepository {
	return &PostgresStatisticsRepository{
		db: db,
	}
}

func (p *PostgresStatisticsRepository) GetTickets(ctx context.Context) ([]domain.Ticket, error) {
	query := `
		SELECT
			t.id,
			t.screening_id,
			t.purchased_at,
			t.validated,
			COALESCE(jsonb_agg(
				jsonb_build_object(
					'row', ts.seat_row,
					'col', ts.seat_col,
					'seatTypeID', ts.seat_type_id
				) ORDER BY ts.seat_row, ts.seat_col
			) FILTER (WHERE ts.ticket_id IS NOT NULL), '[]') AS seats
		FROM tickets t
		LEFT JOIN ticket_seats ts ON ts.ticket_id = t.id
		GROUP BY t.id
		ORDER BY t.id
	`

	rows, err := p.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tickets := make([]domain.Ticket, 0)

	for rows.Next() {
		var ticket domain.Ticket
		var seatsJson json.RawMessage

		err := rows.Scan(
			&ticket.ID,
			&ticket.ScreeningID,
			&ticket.PurchasedAt,
			&ticket.Validated,
			&seatsJson,
		)
		if err != nil {
			return nil, err
		}

		if len(seatsJson) > 0 {
			if err := json.Unmarshal(seatsJson, &ticket.Seats); err != nil {
				return nil, err
			}
		}

		tickets = append(tickets, ticket)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return tickets, nil
}

func (p *PostgresStatisticsRepository) GetSeatTypes(ctx context.Context) ([]domain.SeatType, error) {
	query := `
		SELECT id, title, price
		FROM seat_types
		ORDER BY id
	`

	rows, err := p.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}

	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.SeatType, error) {
		var seatType domain.SeatType
		err := row.Scan(&seatType.ID, &seatType.Title, &seatType.Price)
		return seatType, err
	})
}

func (p *PostgresStatisticsRepository) GetScreenings(ctx context.Context) ([]domain.Screening, error) {
	query := `
		SELECT id, screening_date, scheduled_screening_id
		FROM screenings
		ORDER BY id
	`

	rows, err := p.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}

	return pgx.CollectRows(rows, scanScreening)
}

// GetScreeningsBetween returns the screenings whose date falls within the
// calendar days of start and end, both inclusive.
func (p *PostgresStatisticsRepository) GetScreeningsBetween(
	ctx context.Context,
	start, end time.Time) ([]domain.Screening, error) {

	query := `
		SELECT id, screening_date, scheduled_screening_id
		FROM screenings
		WHERE screening_date BETWEEN $1 AND $2
		ORDER BY screening_date, id
	`

	rows, err := p.db.Query(ctx, query,
		pgtype.Date{Time: start, Valid: true},
		pgtype.Date{Time: end, Valid: true},
	)
	if err != nil {
		return nil, err
	}

	return pgx.CollectRows(rows, scanScreening)
}

func scanScreening(row pgx.CollectableRow) (domain.Screening, error) {
	var screening domain.Screening
	err := row.Scan(&screening.ID, &screening.Date, &screening.ScheduledScreeningID)
	return screening, err
}

func (p *PostgresStatisticsRepository) GetScheduledScreenings(ctx context.Context) ([]domain.ScheduledScreening, error) {
	query := `
		SELECT id, movie_id, cinema_id, to_char(screening_time, 'HH24:MI'), weekday
		FROM scheduled_screenings
		ORDER BY id
	`

	rows, err := p.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}

	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.ScheduledScreening, error) {
		var slot domain.ScheduledScreening
		var weekday int16

		err := row.Scan(&slot.ID, &slot.MovieID, &slot.CinemaID, &slot.Time, &weekday)
		slot.Weekday = time.Weekday(weekday)

		return slot, err
	})
}

func (p *PostgresStatisticsRepository) GetMovies(ctx context.Context) ([]domain.Movie, error) {
	query := `
		SELECT id, title, poster_url
		FROM movies
		ORDER BY id
	`

	rows, err := p.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}

	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Movie, error) {
		var movie domain.Movie
		err := row.Scan(&movie.ID, &movie.Title, &movie.PosterUrl)
		return movie, err
	})
}

func (p *PostgresStatisticsRepository) GetCinemas(ctx context.Context) ([]domain.Cinema, error) {
	query := `
		SELECT id, title
		FROM cinemas
		ORDER BY id
	`

	rows, err := p.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}

	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Cinema, error) {
		var cinema domain.Cinema
		err := row.Scan(&cinema.ID, &cinema.Title)
		return cinema, err
	})
}
