package analytics

import (
	"fmt"
	"time"

	"github.com/metinatakli/cinema-statistics/internal/domain"
)

// BucketKey returns the group key of t for the given granularity. Weekly keys
// use ISO-8601 week numbering and are zero-padded so that keys sort
// chronologically as plain strings. An empty granularity is treated as daily.
func BucketKey(t time.Time, granularity domain.Granularity) string {
	switch granularity {
	case domain.GranularityWeekly:
		year, week := t.ISOWeek()
		return fmt.Sprintf("%04d-W%02d", year, week)
	case domain.GranularityMonthly:
		return t.Format("2006-01")
	default:
		return t.Format(time.DateOnly)
	}
}

func resolveGranularity(g domain.Granularity) (domain.Granularity, error) {
	if g == "" {
		return domain.GranularityDaily, nil
	}

	if !g.Valid() {
		return "", fmt.Errorf("%w: %q", domain.ErrInvalidGranularity, string(g))
	}

	return g, nil
}
