package analytics

import (
	"cmp"
	"context"
	"slices"

	"github.com/metinatakli/cinema-statistics/internal/domain"
	"github.com/shopspring/decimal"
)

const topMoviesLimit = 5

func (e *Engine) TotalRevenue(ctx context.Context) (decimal.Decimal, error) {
	total := decimal.Zero

	err := e.observe(ctx, "total_revenue", func(ctx context.Context) error {
		tickets, err := e.repo.GetTickets(ctx)
		if err != nil {
			return err
		}

		seatTypes, err := e.repo.GetSeatTypes(ctx)
		if err != nil {
			return err
		}

		prices := newPriceList(seatTypes)
		for _, ticket := range tickets {
			for _, seat := range ticket.Seats {
				total = total.Add(prices.seatPrice(seat))
			}
		}

		return nil
	})
	if err != nil {
		return decimal.Zero, err
	}

	return total, nil
}

// RevenueByCinema sums seat prices per cinema, highest revenue first.
func (e *Engine) RevenueByCinema(ctx context.Context) ([]domain.CinemaRevenue, error) {
	var result []domain.CinemaRevenue

	err := e.observe(ctx, "revenue_by_cinema", func(ctx context.Context) error {
		tickets, err := e.repo.GetTickets(ctx)
		if err != nil {
			return err
		}

		seatTypes, err := e.repo.GetSeatTypes(ctx)
		if err != nil {
			return err
		}

		graph, err := e.loadSlotGraph(ctx, false, true)
		if err != nil {
			return err
		}

		prices := newPriceList(seatTypes)
		groups := make(map[int]*domain.CinemaRevenue)

		for _, ticket := range tickets {
			slot, err := graph.slotOfTicket(ticket)
			if err != nil {
				return err
			}

			cinema, err := graph.cinema(slot)
			if err != nil {
				return err
			}

			group, ok := groups[cinema.ID]
			if !ok {
				group = &domain.CinemaRevenue{CinemaID: cinema.ID, CinemaTitle: cinema.Title, Revenue: decimal.Zero}
				groups[cinema.ID] = group
			}

			for _, seat := range ticket.Seats {
				group.Revenue = group.Revenue.Add(prices.seatPrice(seat))
			}
		}

		result = make([]domain.CinemaRevenue, 0, len(groups))
		for _, group := range groups {
			result = append(result, *group)
		}

		slices.SortFunc(result, func(a, b domain.CinemaRevenue) int {
			if c := b.Revenue.Cmp(a.Revenue); c != 0 {
				return c
			}
			return cmp.Compare(a.CinemaID, b.CinemaID)
		})

		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// RevenueByTime reduces every ticket to its revenue first and only then
// groups tickets into buckets, so the ticket count is a count of tickets and
// not of seats.
func (e *Engine) RevenueByTime(ctx context.Context, granularity domain.Granularity) ([]domain.RevenueBucket, error) {
	granularity, err := resolveGranularity(granularity)
	if err != nil {
		return nil, err
	}

	var result []domain.RevenueBucket

	err = e.observe(ctx, "revenue_by_time", func(ctx context.Context) error {
		tickets, err := e.repo.GetTickets(ctx)
		if err != nil {
			return err
		}

		seatTypes, err := e.repo.GetSeatTypes(ctx)
		if err != nil {
			return err
		}

		type ticketRevenue struct {
			bucket  string
			revenue decimal.Decimal
		}

		prices := newPriceList(seatTypes)
		perTicket := make([]ticketRevenue, 0, len(tickets))

		for _, ticket := range tickets {
			perTicket = append(perTicket, ticketRevenue{
				bucket:  BucketKey(ticket.PurchasedAt.In(e.location), granularity),
				revenue: prices.ticketRevenue(ticket),
			})
		}

		groups := make(map[string]*domain.RevenueBucket)
		for _, tr := range perTicket {
			group, ok := groups[tr.bucket]
			if !ok {
				group = &domain.RevenueBucket{Date: tr.bucket, Revenue: decimal.Zero}
				groups[tr.bucket] = group
			}

			group.Revenue = group.Revenue.Add(tr.revenue)
			group.TicketCount++
		}

		result = make([]domain.RevenueBucket, 0, len(groups))
		for _, group := range groups {
			result = append(result, *group)
		}

		slices.SortFunc(result, func(a, b domain.RevenueBucket) int {
			return cmp.Compare(a.Date, b.Date)
		})

		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (e *Engine) BookingCountByTime(ctx context.Context, granularity domain.Granularity) ([]domain.BookingBucket, error) {
	granularity, err := resolveGranularity(granularity)
	if err != nil {
		return nil, err
	}

	var result []domain.BookingBucket

	err = e.observe(ctx, "booking_count_by_time", func(ctx context.Context) error {
		tickets, err := e.repo.GetTickets(ctx)
		if err != nil {
			return err
		}

		counts := make(map[string]int)
		for _, ticket := range tickets {
			counts[BucketKey(ticket.PurchasedAt.In(e.location), granularity)]++
		}

		result = make([]domain.BookingBucket, 0, len(counts))
		for date, count := range counts {
			result = append(result, domain.BookingBucket{Date: date, Count: count})
		}

		slices.SortFunc(result, func(a, b domain.BookingBucket) int {
			return cmp.Compare(a.Date, b.Date)
		})

		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// MovieStatistics counts tickets and revenue per movie. AllMovies is ordered
// by ticket count, most sold first, and Top5 is its prefix.
func (e *Engine) MovieStatistics(ctx context.Context) (domain.MovieStatistics, error) {
	var result domain.MovieStatistics

	err := e.observe(ctx, "movie_statistics", func(ctx context.Context) error {
		tickets, err := e.repo.GetTickets(ctx)
		if err != nil {
			return err
		}

		seatTypes, err := e.repo.GetSeatTypes(ctx)
		if err != nil {
			return err
		}

		graph, err := e.loadSlotGraph(ctx, true, false)
		if err != nil {
			return err
		}

		prices := newPriceList(seatTypes)
		groups := make(map[int]*domain.MovieTicketStat)

		for _, ticket := range tickets {
			slot, err := graph.slotOfTicket(ticket)
			if err != nil {
				return err
			}

			movie, err := graph.movie(slot)
			if err != nil {
				return err
			}

			group, ok := groups[movie.ID]
			if !ok {
				group = &domain.MovieTicketStat{
					MovieID:     movie.ID,
					MovieTitle:  movie.Title,
					MoviePoster: movie.PosterUrl,
					Revenue:     decimal.Zero,
				}
				groups[movie.ID] = group
			}

			group.TicketCount++
			group.Revenue = group.Revenue.Add(prices.ticketRevenue(ticket))
		}

		all := make([]domain.MovieTicketStat, 0, len(groups))
		for _, group := range groups {
			all = append(all, *group)
		}

		slices.SortFunc(all, func(a, b domain.MovieTicketStat) int {
			if c := cmp.Compare(b.TicketCount, a.TicketCount); c != 0 {
				return c
			}
			return cmp.Compare(a.MovieID, b.MovieID)
		})

		result = domain.MovieStatistics{
			AllMovies: all,
			Top5:      TopN(all, topMoviesLimit),
		}

		return nil
	})
	if err != nil {
		return domain.MovieStatistics{}, err
	}

	return result, nil
}

// ShowtimesThisWeek lists the screenings of the calendar week containing the
// engine's current instant.
func (e *Engine) ShowtimesThisWeek(ctx context.Context) (domain.WeekShowtimes, error) {
	window := WeekWindow(e.now().In(e.location))
	result := domain.WeekShowtimes{
		StartDate: window.Start,
		EndDate:   window.End,
	}

	err := e.observe(ctx, "showtimes_this_week", func(ctx context.Context) error {
		screenings, err := e.repo.GetScreeningsBetween(ctx, window.Start, window.End)
		if err != nil {
			return err
		}

		slots, err := e.repo.GetScheduledScreenings(ctx)
		if err != nil {
			return err
		}

		movies, err := e.repo.GetMovies(ctx)
		if err != nil {
			return err
		}

		cinemas, err := e.repo.GetCinemas(ctx)
		if err != nil {
			return err
		}

		graph := slotGraph{
			slots:   indexBy(slots, func(s domain.ScheduledScreening) int { return s.ID }),
			movies:  indexBy(movies, func(m domain.Movie) int { return m.ID }),
			cinemas: indexBy(cinemas, func(c domain.Cinema) int { return c.ID }),
		}

		showtimes := make([]domain.WeekShowtime, 0, len(screenings))

		for _, screening := range screenings {
			date := calendarDate(screening.Date, e.location)
			if !window.Contains(date) {
				continue
			}

			slot, err := graph.slotOfScreening(screening)
			if err != nil {
				return err
			}

			movie, err := graph.movie(slot)
			if err != nil {
				return err
			}

			cinema, err := graph.cinema(slot)
			if err != nil {
				return err
			}

			showtimes = append(showtimes, domain.WeekShowtime{
				ID:          screening.ID,
				Date:        date,
				Time:        slot.Time,
				MovieTitle:  movie.Title,
				CinemaTitle: cinema.Title,
			})
		}

		slices.SortStableFunc(showtimes, func(a, b domain.WeekShowtime) int {
			return a.Date.Compare(b.Date)
		})

		result.Showtimes = showtimes
		result.Count = len(showtimes)

		return nil
	})
	if err != nil {
		return domain.WeekShowtimes{}, err
	}

	return result, nil
}

func (e *Engine) loadSlotGraph(ctx context.Context, withMovies, withCinemas bool) (slotGraph, error) {
	screenings, err := e.repo.GetScreenings(ctx)
	if err != nil {
		return slotGraph{}, err
	}

	slots, err := e.repo.GetScheduledScreenings(ctx)
	if err != nil {
		return slotGraph{}, err
	}

	graph := slotGraph{
		screenings: indexBy(screenings, func(s domain.Screening) int { return s.ID }),
		slots:      indexBy(slots, func(s domain.ScheduledScreening) int { return s.ID }),
	}

	if withMovies {
		movies, err := e.repo.GetMovies(ctx)
		if err != nil {
			return slotGraph{}, err
		}
		graph.movies = indexBy(movies, func(m domain.Movie) int { return m.ID })
	}

	if withCinemas {
		cinemas, err := e.repo.GetCinemas(ctx)
		if err != nil {
			return slotGraph{}, err
		}
		graph.cinemas = indexBy(cinemas, func(c domain.Cinema) int { return c.ID })
	}

	return graph, nil
}
