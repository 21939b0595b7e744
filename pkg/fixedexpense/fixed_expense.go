package fixedexpense

import (
	"errors"
	"time"

	"github.com/grana/grana/internal/money"
)

var (
	ErrFixedExpenseNotFound = errors.New("fixed expense not found")
	ErrNegativeAmount       = errors.New("amount must not be negative")
	ErrInvalidDueDay        = errors.New("due day must be between 1 and 31")
	ErrInvalidPeriod        = errors.New("month must be 1-12 and year 1-9999")
)

// FixedExpense is a recurring monthly expense scoped to a (month, year)
// period. The paid flag is the only mutable field after creation. DueDay is
// deliberately not validated against the actual days of the month.
type FixedExpense struct {
	ID        string
	Name      string
	Amount    money.Money
	DueDay    int
	Paid      bool
	Month     int
	Year      int
	CreatedAt time.Time
}

// Filter narrows a listing to a period. Year alone selects a whole year;
// Month is ignored unless Year is set as well.
type Filter struct {
	Month int
	Year  int
}
