package transaction

import (
	"errors"
	"time"

	"github.com/grana/grana/internal/money"
)

type Kind string

const (
	KindIncome  Kind = "income"
	KindExpense Kind = "expense"
)

func (k Kind) IsValid() bool {
	return k == KindIncome || k == KindExpense
}

var (
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrInvalidKind         = errors.New("invalid transaction kind")
	ErrNegativeAmount      = errors.New("amount must not be negative")
)

// Transaction is a single income or expense entry. Month and Year are derived
// from Timestamp once at creation and stored alongside it; they are never
// recomputed on read. Transactions are immutable after creation.
type Transaction struct {
	ID          string
	Kind        Kind
	Amount      money.Money
	Description string
	Timestamp   time.Time
	Month       int
	Year        int
}

// Filter narrows a listing to a period. Year alone selects a whole year;
// Month is ignored unless Year is set as well.
type Filter struct {
	Month int
	Year  int
}
