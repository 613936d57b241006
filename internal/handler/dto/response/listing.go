package response

import (
	"rental-market/internal/domain/daterange"
	"rental-market/internal/domain/money"
	"rental-market/internal/usecase/queries"

	"github.com/google/uuid"
)

type AvailabilityResponse struct {
	ListingID     uuid.UUID                     `json:"listing_id"`
	From          daterange.Day                 `json:"from"`
	To            daterange.Day                 `json:"to"`
	DisabledDates []daterange.Day               `json:"disabled_dates"`
	PriceByDate   map[daterange.Day]money.Money `json:"price_by_date"`
}

type QuoteResponse struct {
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

type SelectionResponse struct {
	StartDate     *daterange.Day `json:"start_date,omitempty"`
	EndDate       *daterange.Day `json:"end_date,omitempty"`
	OverridePrice *money.Money   `json:"override_price,omitempty"`
	Complete      bool           `json:"complete"`
}

func FromAvailabilityView(v *queries.AvailabilityView) (*AvailabilityResponse, error) {
	return copyFrom[AvailabilityResponse](v)
}

func FromQuoteView(v *queries.QuoteView) (*QuoteResponse, error) {
	return copyFrom[QuoteResponse](v)
}

func FromSelectionView(v *queries.SelectionView) (*SelectionResponse, error) {
	return copyFrom[SelectionResponse](v)
}
