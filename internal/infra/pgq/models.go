package pgq

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type Users struct {
	ID           uuid.UUID          `json:"id"`
	Email        string             `json:"email"`
	Phone        pgtype.Text        `json:"phone"`
	DisplayName  string             `json:"display_name"`
	PasswordHash string             `json:"password_hash"`
	Role         string             `json:"role"`
	IsActive     bool               `json:"is_active"`
	LastLogin    pgtype.Timestamptz `json:"last_login"`
	CreatedAt    pgtype.Timestamptz `json:"created_at"`
	UpdatedAt    pgtype.Timestamptz `json:"updated_at"`
}

type Listings struct {
	ID         uuid.UUID          `json:"id"`
	OwnerID    uuid.UUID          `json:"owner_id"`
	Kind       string             `json:"kind"`
	Title      string             `json:"title"`
	BasePrice  int64              `json:"base_price"`
	Currency   string             `json:"currency"`
	RentalUnit string             `json:"rental_unit"`
	CreatedAt  pgtype.Timestamptz `json:"created_at"`
	UpdatedAt  pgtype.Timestamptz `json:"updated_at"`
}

type ListingAddOns struct {
	ID           uuid.UUID          `json:"id"`
	ListingID    uuid.UUID          `json:"listing_id"`
	Name         string             `json:"name"`
	Price        int64              `json:"price"`
	PricingModel string             `json:"pricing_model"`
	CreatedAt    pgtype.Timestamptz `json:"created_at"`
}

type AvailabilityOverrides struct {
	ListingID   uuid.UUID   `json:"listing_id"`
	Date        pgtype.Date `json:"date"`
	IsAvailable bool        `json:"is_available"`
	Price       pgtype.Int8 `json:"price"`
}

type Conversations struct {
	ID            uuid.UUID          `json:"id"`
	ListingID     uuid.UUID          `json:"listing_id"`
	Kind          string             `json:"kind"`
	BuyerID       uuid.UUID          `json:"buyer_id"`
	SellerID      uuid.UUID          `json:"seller_id"`
	LastMessageAt pgtype.Timestamptz `json:"last_message_at"`
	CreatedAt     pgtype.Timestamptz `json:"created_at"`
}

type Messages struct {
	ID             uuid.UUID          `json:"id"`
	ConversationID uuid.UUID          `json:"conversation_id"`
	SenderID       uuid.UUID          `json:"sender_id"`
	Type           string             `json:"type"`
	Content        string             `json:"content"`
	Price          pgtype.Int8        `json:"price"`
	Currency       pgtype.Text        `json:"currency"`
	Meta           []byte             `json:"meta"`
	CreatedAt      pgtype.Timestamptz `json:"created_at"`
}

type Reservations struct {
	ID                   uuid.UUID          `json:"id"`
	ListingID            uuid.UUID          `json:"listing_id"`
	ListingKind          string             `json:"listing_kind"`
	OwnerID              uuid.UUID          `json:"owner_id"`
	GuestID              uuid.UUID          `json:"guest_id"`
	StartDate            pgtype.Date        `json:"start_date"`
	EndDate              pgtype.Date        `json:"end_date"`
	Currency             string             `json:"currency"`
	UnitPrice            int64              `json:"unit_price"`
	TotalPrice           int64              `json:"total_price"`
	ServiceFee           int64              `json:"service_fee"`
	PriceEspece          int64              `json:"price_espece"`
	Status               string             `json:"status"`
	ArrivalConfirmation  bool               `json:"arrival_confirmation"`
	EspeceConfirmation   bool               `json:"espece_confirmation"`
	ConfirmedAt          pgtype.Timestamptz `json:"confirmed_at"`
	ReservationCode      string             `json:"reservation_code"`
	SourceOfferMessageID pgtype.UUID        `json:"source_offer_message_id"`
	CreatedAt            pgtype.Timestamptz `json:"created_at"`
	UpdatedAt            pgtype.Timestamptz `json:"updated_at"`
}

type Transactions struct {
	ID            uuid.UUID          `json:"id"`
	ReservationID uuid.UUID          `json:"reservation_id"`
	Amount        int64              `json:"amount"`
	Currency      string             `json:"currency"`
	Status        string             `json:"status"`
	PaymentMethod string             `json:"payment_method"`
	CreatedAt     pgtype.Timestamptz `json:"created_at"`
	UpdatedAt     pgtype.Timestamptz `json:"updated_at"`
}

type IdempotencyKeys struct {
	Key         uuid.UUID          `json:"key"`
	UserID      uuid.UUID          `json:"user_id"`
	Endpoint    string             `json:"endpoint"`
	RequestHash string             `json:"request_hash"`
	Status      string             `json:"status"`
	ResultID    pgtype.UUID        `json:"result_id"`
	ExpiresAt   pgtype.Timestamptz `json:"expires_at"`
	CreatedAt   pgtype.Timestamptz `json:"created_at"`
	UpdatedAt   pgtype.Timestamptz `json:"updated_at"`
}

type NotificationJobs struct {
	ID        uuid.UUID          `json:"id"`
	Kind      string             `json:"kind"`
	Topic     string             `json:"topic"`
	Payload   []byte             `json:"payload"`
	RunAt     pgtype.Timestamptz `json:"run_at"`
	Attempts  int32              `json:"attempts"`
	Status    string             `json:"status"`
	LastError pgtype.Text        `json:"last_error"`
	CreatedAt pgtype.Timestamptz `json:"created_at"`
	UpdatedAt pgtype.Timestamptz `json:"updated_at"`
}
