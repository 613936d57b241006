package reservation

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	default:
		return false
	}
}

// IsConfirmed covers confirmed and completed stays.
func (s Status) IsConfirmed() bool {
	return s == StatusConfirmed || s == StatusCompleted
}

// BlocksCalendar reports whether the reservation occupies its dates.
func (s Status) BlocksCalendar() bool {
	return s.IsConfirmed()
}

// BlockingStatuses is the status filter the availability resolver reads.
func BlockingStatuses() []Status {
	return []Status{StatusConfirmed, StatusCompleted}
}

type TransactionStatus string

const (
	TxPending  TransactionStatus = "pending"
	TxPaid     TransactionStatus = "paid"
	TxFailed   TransactionStatus = "failed"
	TxRefunded TransactionStatus = "refunded"
)

func (s TransactionStatus) IsValid() bool {
	switch s {
	case TxPending, TxPaid, TxFailed, TxRefunded:
		return true
	default:
		return false
	}
}

func NewTransactionStatus(s string) (TransactionStatus, error) {
	st := TransactionStatus(s)
	if !st.IsValid() {
		return "", ErrInvalidStatus
	}
	return st, nil
}

type PaymentMethod string

const (
	MethodInApp PaymentMethod = "in_app"
	MethodCash  PaymentMethod = "cash"
)

type Granularity string

const (
	ByDay   Granularity = "day"
	ByMonth Granularity = "month"
	ByYear  Granularity = "year"
)

func NewGranularity(s string) (Granularity, error) {
	g := Granularity(s)
	switch g {
	case ByDay, ByMonth, ByYear:
		return g, nil
	default:
		return "", ErrInvalidGranularity
	}
}
