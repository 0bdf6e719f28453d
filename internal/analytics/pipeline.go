package analytics

import (
	"fmt"

	"github.com/metinatakli/cinema-statistics/internal/domain"
	"github.com/shopspring/decimal"
)

func indexBy[T any](items []T, key func(T) int) map[int]T {
	index := make(map[int]T, len(items))
	for _, item := range items {
		index[key(item)] = item
	}

	return index
}

// priceList resolves seat prices through their seat type.
type priceList map[int]decimal.Decimal

func newPriceList(seatTypes []domain.SeatType) priceList {
	prices := make(priceList, len(seatTypes))
	for _, st := range seatTypes {
		prices[st.ID] = st.Price
	}

	return prices
}

func (p priceList) lookup(seat domain.TicketSeat) decimal.NullDecimal {
	price, ok := p[seat.SeatTypeID]
	return decimal.NullDecimal{Decimal: price, Valid: ok}
}

// seatPrice is the resolved price of a seat, or zero when the seat type is
// missing.
func (p priceList) seatPrice(seat domain.TicketSeat) decimal.Decimal {
	price := p.lookup(seat)
	if !price.Valid {
		return decimal.Zero
	}

	return price.Decimal
}

func (p priceList) ticketRevenue(ticket domain.Ticket) decimal.Decimal {
	total := decimal.Zero
	for _, seat := range ticket.Seats {
		total = total.Add(p.seatPrice(seat))
	}

	return total
}

// slotGraph resolves Screening -> ScheduledScreening -> {Movie, Cinema}.
type slotGraph struct {
	screenings map[int]domain.Screening
	slots      map[int]domain.ScheduledScreening
	movies     map[int]domain.Movie
	cinemas    map[int]domain.Cinema
}

func (g slotGraph) slotOfScreening(screening domain.Screening) (domain.ScheduledScreening, error) {
	slot, ok := g.slots[screening.ScheduledScreeningID]
	if !ok {
		return domain.ScheduledScreening{}, fmt.Errorf("%w: screening %d references missing scheduled screening %d",
			domain.ErrBrokenReference, screening.ID, screening.ScheduledScreeningID)
	}

	return slot, nil
}

func (g slotGraph) slotOfTicket(ticket domain.Ticket) (domain.ScheduledScreening, error) {
	screening, ok := g.screenings[ticket.ScreeningID]
	if !ok {
		return domain.ScheduledScreening{}, fmt.Errorf("%w: ticket %d references missing screening %d",
			domain.ErrBrokenReference, ticket.ID, ticket.ScreeningID)
	}

	return g.slotOfScreening(screening)
}

func (g slotGraph) movie(slot domain.ScheduledScreening) (domain.Movie, error) {
	movie, ok := g.movies[slot.MovieID]
	if !ok {
		return domain.Movie{}, fmt.Errorf("%w: scheduled screening %d references missing movie %d",
			domain.ErrBrokenReference, slot.ID, slot.MovieID)
	}

	return movie, nil
}

func (g slotGraph) cinema(slot domain.ScheduledScreening) (domain.Cinema, error) {
	cinema, ok := g.cinemas[slot.CinemaID]
	if !ok {
		return domain.Cinema{}, fmt.Errorf("%w: scheduled screening %d references missing cinema %d",
			domain.ErrBrokenReference, slot.ID, slot.CinemaID)
	}

	return cinema, nil
}
