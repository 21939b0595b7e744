package alert

import (
	"errors"

	"github.com/grana/grana/internal/money"
)

var ErrInvalidPeriod = errors.New("month must be 1-12 and year 1-9999")

// AlertConfig holds the monthly spending limit for one (month, year) period.
// At most one active config may exist per period; Create enforces this with
// replace-on-create semantics.
type AlertConfig struct {
	ID           string
	MonthlyLimit money.Money
	Month        int
	Year         int
	Active       bool
}
