package reservation

import (
	"time"

	"rental-market/internal/domain/money"

	"github.com/google/uuid"
)

// Transaction records a declared amount; payment happens out of band and an
// operator records the outcome.
type Transaction struct {
	id            uuid.UUID
	reservationID uuid.UUID
	amount        money.Money
	status        TransactionStatus
	method        PaymentMethod
	createdAt     time.Time
	updatedAt     time.Time
}

func NewTransaction(reservationID uuid.UUID, amount money.Money, method PaymentMethod, now time.Time) *Transaction {
	return &Transaction{
		id:            uuid.New(),
		reservationID: reservationID,
		amount:        amount,
		status:        TxPending,
		method:        method,
		createdAt:     now,
		updatedAt:     now,
	}
}

func ReconstructTransaction(
	id, reservationID uuid.UUID,
	amount money.Money,
	status TransactionStatus,
	method PaymentMethod,
	createdAt, updatedAt time.Time,
) *Transaction {
	return &Transaction{
		id:            id,
		reservationID: reservationID,
		amount:        amount,
		status:        status,
		method:        method,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

var transactionTransitions = map[TransactionStatus][]TransactionStatus{
	TxPending: {TxPaid, TxFailed},
	TxFailed:  {TxPending, TxPaid},
	TxPaid:    {TxRefunded},
}

func (t *Transaction) UpdateStatus(next TransactionStatus, now time.Time) error {
	if !next.IsValid() {
		return ErrInvalidStatus
	}
	for _, allowed := range transactionTransitions[t.status] {
		if allowed == next {
			t.status = next
			t.updatedAt = now
			return nil
		}
	}
	return ErrInvalidTransition
}

func (t *Transaction) IsPaid() bool {
	return t.status == TxPaid
}

// AnyPaid is the payment gate used by eligibility, cancellation and contact
// disclosure.
func AnyPaid(txns []*Transaction) bool {
	for _, t := range txns {
		if t.IsPaid() {
			return true
		}
	}
	return false
}

func (t *Transaction) ID() uuid.UUID             { return t.id }
func (t *Transaction) ReservationID() uuid.UUID  { return t.reservationID }
func (t *Transaction) Amount() money.Money       { return t.amount }
func (t *Transaction) Status() TransactionStatus { return t.status }
func (t *Transaction) Method() PaymentMethod     { return t.method }
func (t *Transaction) CreatedAt() time.Time      { return t.createdAt }
func (t *Transaction) UpdatedAt() time.Time      { return t.updatedAt }
