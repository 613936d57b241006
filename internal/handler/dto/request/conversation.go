package request

import (
	"rental-market/internal/usecase/commands"

	"github.com/google/uuid"
)

type EnsureConversationRequest struct {
	ListingID uuid.UUID `json:"listing_id" binding:"required"`
}

type SendMessageRequest struct {
	Content string `json:"content" binding:"required,max=4000"`
}

// ProposeOfferRequest covers the first offer, counter-offers and reopening
// a rejected offer with a new price.
type ProposeOfferRequest struct {
	Amount     int64      `json:"amount" binding:"required,gt=0,lte=100000000000"`
	ReopenFrom *uuid.UUID `json:"reopen_from,omitempty"`
}

func (r ProposeOfferRequest) ToInput() commands.ProposeOfferInput {
	return commands.ProposeOfferInput{
		Amount:     r.Amount,
		ReopenFrom: r.ReopenFrom,
	}
}
