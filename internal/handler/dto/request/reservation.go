package request

import (
	"rental-market/internal/domain/reservation"
	"rental-market/internal/usecase/commands"

	"github.com/google/uuid"
)

type CheckoutRequest struct {
	ListingID uuid.UUID `json:"listing_id" binding:"required"`
	StayRequest
}

func (r CheckoutRequest) ToInput() (commands.CheckoutInput, error) {
	start, end, err := r.dates()
	if err != nil {
		return commands.CheckoutInput{}, err
	}
	return commands.CheckoutInput{
		ListingID:      r.ListingID,
		Start:          start,
		End:            end,
		AddOnIDs:       r.AddOnIDs,
		OfferMessageID: r.OfferMessageID,
	}, nil
}

type UpdateTransactionRequest struct {
	Status string `json:"status" binding:"required,oneof=pending paid failed refunded"`
}

func (r UpdateTransactionRequest) ToDomain() (reservation.TransactionStatus, error) {
	return reservation.NewTransactionStatus(r.Status)
}
