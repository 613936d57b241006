package queries

import (
	"encoding/json"
	"time"

	"rental-market/internal/domain/daterange"
	"rental-market/internal/domain/money"

	"github.com/google/uuid"
)

// AuthorizedUserView represents read-optimized user data with authorization info
type AuthorizedUserView struct {
	ID          uuid.UUID `json:"id"`
	Email       string    `json:"email"`
	DisplayName string    `json:"display_name"`
	Role        string    `json:"role"`
	IsActive    bool      `json:"is_active"`
}

// ContactView is only built once the disclosure gate holds.
type ContactView struct {
	UserID      uuid.UUID `json:"user_id"`
	DisplayName string    `json:"display_name"`
	Email       string    `json:"email"`
	Phone       *string   `json:"phone,omitempty"`
}

type AvailabilityView struct {
	ListingID     uuid.UUID                     `json:"listing_id"`
	From          daterange.Day                 `json:"from"`
	To            daterange.Day                 `json:"to"`
	DisabledDates []daterange.Day               `json:"disabled_dates"`
	PriceByDate   map[daterange.Day]money.Money `json:"price_by_date"`
}

type QuoteView struct {
	ListingID         uuid.UUID     `json:"listing_id"`
	StartDate         daterange.Day `json:"start_date"`
	EndDate           daterange.Day `json:"end_date"`
	Available         bool          `json:"available"`
	UnitPrice         money.Money   `json:"unit_price"`
	PriceSource       string        `json:"price_source"`
	Units             int           `json:"units"`
	Base              money.Money   `json:"base"`
	AddOnsTotal       money.Money   `json:"add_ons_total"`
	GrandTotal        money.Money   `json:"grand_total"`
	ServiceFeeTotal   money.Money   `json:"service_fee_total"`
	AmountDueNow      money.Money   `json:"amount_due_now"`
	AmountDueInPerson money.Money   `json:"amount_due_in_person"`
}

type SelectionView struct {
	StartDate     *daterange.Day `json:"start_date,omitempty"`
	EndDate       *daterange.Day `json:"end_date,omitempty"`
	OverridePrice *money.Money   `json:"override_price,omitempty"`
	Complete      bool           `json:"complete"`
}

type ConversationView struct {
	ID            uuid.UUID  `json:"id"`
	ListingID     uuid.UUID  `json:"listing_id"`
	ListingTitle  string     `json:"listing_title"`
	Kind          string     `json:"kind"`
	BuyerID       uuid.UUID  `json:"buyer_id"`
	SellerID      uuid.UUID  `json:"seller_id"`
	LastMessageAt *time.Time `json:"last_message_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

type MessageView struct {
	ID             uuid.UUID       `json:"id"`
	ConversationID uuid.UUID       `json:"conversation_id"`
	SenderID       uuid.UUID       `json:"sender_id"`
	Type           string          `json:"type"`
	Content        string          `json:"content"`
	Price          *money.Money    `json:"price,omitempty"`
	Meta           json.RawMessage `json:"meta,omitempty"`
	IsAccept       bool            `json:"is_accept"`
	IsReject       bool            `json:"is_reject"`
	CreatedAt      time.Time       `json:"created_at"`
}

type NegotiationView struct {
	ConversationID  uuid.UUID    `json:"conversation_id"`
	Role            string       `json:"role"`
	Phase           string       `json:"phase"`
	Composer        string       `json:"composer"`
	PendingOfferID  *uuid.UUID   `json:"pending_offer_id,omitempty"`
	LatestOfferID   *uuid.UUID   `json:"latest_offer_id,omitempty"`
	AcceptedOfferID *uuid.UUID   `json:"accepted_offer_id,omitempty"`
	AgreedPrice     *money.Money `json:"agreed_price,omitempty"`
	Deadline        *time.Time   `json:"deadline,omitempty"`
	WarningAt       *time.Time   `json:"warning_at,omitempty"`
	RemainingSec    int64        `json:"remaining_seconds"`
	Warning         bool         `json:"warning"`
	Expired         bool         `json:"expired"`
	CanReserve      bool         `json:"can_reserve"`
}

type TransactionView struct {
	ID        uuid.UUID   `json:"id"`
	Amount    money.Money `json:"amount"`
	Status    string      `json:"status"`
	Method    string      `json:"method"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

type ReservationView struct {
	ID                   uuid.UUID         `json:"id"`
	Code                 string            `json:"code"`
	ListingID            uuid.UUID         `json:"listing_id"`
	ListingKind          string            `json:"listing_kind"`
	OwnerID              uuid.UUID         `json:"owner_id"`
	GuestID              uuid.UUID         `json:"guest_id"`
	StartDate            daterange.Day     `json:"start_date"`
	EndDate              daterange.Day     `json:"end_date"`
	UnitPrice            money.Money       `json:"unit_price"`
	TotalPrice           money.Money       `json:"total_price"`
	ServiceFee           money.Money       `json:"service_fee"`
	PriceEspece          money.Money       `json:"price_espece"`
	Status               string            `json:"status"`
	ArrivalConfirmed     bool              `json:"arrival_confirmation"`
	CashConfirmed        bool              `json:"espece_confirmation"`
	ConfirmedAt          *time.Time        `json:"confirmed_at,omitempty"`
	SourceOfferMessageID *uuid.UUID        `json:"source_offer_message_id,omitempty"`
	Paid                 bool              `json:"paid"`
	CanCancel            bool              `json:"can_cancel"`
	CancellationDeadline time.Time         `json:"cancellation_deadline"`
	EligibleForPayout    bool              `json:"eligible_for_payout"`
	Transactions         []TransactionView `json:"transactions"`
	Counterpart          *ContactView      `json:"counterpart,omitempty"`
	CreatedAt            time.Time         `json:"created_at"`
	UpdatedAt            time.Time         `json:"updated_at"`
}

type RevenueBucketView struct {
	Period string      `json:"period"`
	Amount money.Money `json:"amount"`
	Count  int         `json:"count"`
}

// NotificationJobView is an outbox row claimed for delivery.
type NotificationJobView struct {
	ID        uuid.UUID
	Kind      string
	Topic     string
	Payload   []byte
	RunAt     time.Time
	Attempts  int32
	CreatedAt time.Time
}
