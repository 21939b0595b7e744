package event_bus

// PeriodChangedEvent is published on every write that affects the data of a
// (month, year) period: transaction create/delete, fixed expense
// create/update/delete, and alert config replacement.
const PeriodChangedEvent EventType = "period.changed"

type PeriodChanged struct {
	Month int
	Year  int
}
