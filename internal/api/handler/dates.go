package handler

import (
	"fmt"
	"time"

	"github.com/sismin/backoffice-api/internal/core/domain"
)

const dateLayout = "2006-01-02"

// parseDate parses a YYYY-MM-DD query value. Empty values yield a zero time
// so optional range parameters stay optional.
func parseDate(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", domain.ErrInvalidDate, value)
	}
	return t, nil
}
