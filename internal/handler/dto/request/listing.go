package request

import (
	"rental-market/internal/domain/daterange"
	"rental-market/internal/usecase/queries"

	"github.com/google/uuid"
)

// StayRequest carries a stay as YYYY-MM-DD dates. EndDate is omitted for a
// single-day rental.
type StayRequest struct {
	StartDate      string      `json:"start_date" binding:"required"`
	EndDate        *string     `json:"end_date,omitempty"`
	AddOnIDs       []uuid.UUID `json:"add_on_ids,omitempty"`
	OfferMessageID *uuid.UUID  `json:"offer_message_id,omitempty"`
}

func (r StayRequest) dates() (daterange.Day, *daterange.Day, error) {
	start, err := daterange.ParseDay(r.StartDate)
	if err != nil {
		return 0, nil, err
	}
	end, err := parseOptionalDay(r.EndDate)
	if err != nil {
		return 0, nil, err
	}
	return start, end, nil
}

type QuoteRequest struct {
	StayRequest
}

func (r QuoteRequest) ToInput() (queries.QuoteInput, error) {
	start, end, err := r.dates()
	if err != nil {
		return queries.QuoteInput{}, err
	}
	return queries.QuoteInput{
		Start:          start,
		End:            end,
		AddOnIDs:       r.AddOnIDs,
		OfferMessageID: r.OfferMessageID,
	}, nil
}

// SelectDayRequest is the client's current selection plus the tapped day.
type SelectDayRequest struct {
	StartDate *string `json:"start_date,omitempty"`
	EndDate   *string `json:"end_date,omitempty"`
	Tap       string  `json:"tap" binding:"required"`
}

func (r SelectDayRequest) ToInput() (queries.SelectionInput, error) {
	tap, err := daterange.ParseDay(r.Tap)
	if err != nil {
		return queries.SelectionInput{}, err
	}
	start, err := parseOptionalDay(r.StartDate)
	if err != nil {
		return queries.SelectionInput{}, err
	}
	end, err := parseOptionalDay(r.EndDate)
	if err != nil {
		return queries.SelectionInput{}, err
	}
	return queries.SelectionInput{Start: start, End: end, Tap: tap}, nil
}

func parseOptionalDay(s *string) (*daterange.Day, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	d, err := daterange.ParseDay(*s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
