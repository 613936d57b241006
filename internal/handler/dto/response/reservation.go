package response

import (
	"time"

	"rental-market/internal/domain/daterange"
	"rental-market/internal/domain/money"
	"rental-market/internal/domain/reservation"
	"rental-market/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationResponse struct {
	ID                   uuid.UUID                 `json:"id"`
	Code                 string                    `json:"code"`
	ListingID            uuid.UUID                 `json:"listing_id"`
	ListingKind          string                    `json:"listing_kind"`
	OwnerID              uuid.UUID                 `json:"owner_id"`
	GuestID              uuid.UUID                 `json:"guest_id"`
	StartDate            daterange.Day             `json:"start_date"`
	EndDate              daterange.Day             `json:"end_date"`
	UnitPrice            money.Money               `json:"unit_price"`
	TotalPrice           money.Money               `json:"total_price"`
	ServiceFee           money.Money               `json:"service_fee"`
	PriceEspece          money.Money               `json:"price_espece"`
	Status               string                    `json:"status"`
	ArrivalConfirmed     bool                      `json:"arrival_confirmation"`
	CashConfirmed        bool                      `json:"espece_confirmation"`
	ConfirmedAt          *time.Time                `json:"confirmed_at,omitempty"`
	SourceOfferMessageID *uuid.UUID                `json:"source_offer_message_id,omitempty"`
	Paid                 bool                      `json:"paid"`
	CanCancel            bool                      `json:"can_cancel"`
	CancellationDeadline time.Time                 `json:"cancellation_deadline"`
	EligibleForPayout    bool                      `json:"eligible_for_payout"`
	Transactions         []queries.TransactionView `json:"transactions"`
	Counterpart          *queries.ContactView      `json:"counterpart,omitempty"`
	CreatedAt            time.Time                 `json:"created_at"`
	UpdatedAt            time.Time                 `json:"updated_at"`
}

type CheckoutResponse struct {
	Reservation *ReservationResponse `json:"reservation"`
	Replayed    bool                 `json:"replayed"`
}

type TransactionResponse struct {
	ID            uuid.UUID   `json:"id"`
	ReservationID uuid.UUID   `json:"reservation_id"`
	Amount        money.Money `json:"amount"`
	Status        string      `json:"status"`
	Method        string      `json:"method"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
}

type RevenueBucketResponse struct {
	Period string      `json:"period"`
	Amount money.Money `json:"amount"`
	Count  int         `json:"count"`
}

func FromReservationView(v *queries.ReservationView) (*ReservationResponse, error) {
	return copyFrom[ReservationResponse](v)
}

func FromReservationViews(vs []*queries.ReservationView) ([]*ReservationResponse, error) {
	return copyAll[ReservationResponse](vs)
}

func FromRevenueViews(vs []*queries.RevenueBucketView) ([]*RevenueBucketResponse, error) {
	return copyAll[RevenueBucketResponse](vs)
}

func FromTransaction(t *reservation.Transaction) *TransactionResponse {
	return &TransactionResponse{
		ID:            t.ID(),
		ReservationID: t.ReservationID(),
		Amount:        t.Amount(),
		Status:        string(t.Status()),
		Method:        string(t.Method()),
		CreatedAt:     t.CreatedAt(),
		UpdatedAt:     t.UpdatedAt(),
	}
}
