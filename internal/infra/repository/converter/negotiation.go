package converter

import (
	"rental-market/internal/domain/listing"
	"rental-market/internal/domain/money"
	"rental-market/internal/domain/negotiation"
	"rental-market/internal/infra/pgq"
	"rental-market/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

func ConversationToInfra(conv *negotiation.Conversation) pgq.CreateConversationParams {
	return pgq.CreateConversationParams{
		ID:            conv.ID(),
		ListingID:     conv.ListingID(),
		Kind:          string(conv.Kind()),
		BuyerID:       conv.BuyerID(),
		SellerID:      conv.SellerID(),
		LastMessageAt: pgconv.TimePtrToPgtype(conv.LastMessageAt()),
		CreatedAt:     pgconv.TimeToPgtype(conv.CreatedAt()),
	}
}

func ConversationFromInfra(row pgq.Conversations) *negotiation.Conversation {
	return negotiation.ReconstructConversation(
		row.ID,
		row.ListingID,
		listing.Kind(row.Kind),
		row.BuyerID,
		row.SellerID,
		pgconv.TimePtrFromPgtype(row.LastMessageAt),
		pgconv.TimeFromPgtype(row.CreatedAt),
	)
}

func MessageToInfra(msg *negotiation.Message) (pgq.InsertMessageParams, error) {
	meta, err := negotiation.EncodeMeta(msg.Meta())
	if err != nil {
		return pgq.InsertMessageParams{}, err
	}
	params := pgq.InsertMessageParams{
		ID:             msg.ID(),
		ConversationID: msg.ConversationID(),
		SenderID:       msg.SenderID(),
		Type:           string(msg.Type()),
		Content:        msg.Content(),
		Meta:           meta,
		CreatedAt:      pgconv.TimeToPgtype(msg.CreatedAt()),
	}
	if p := msg.Price(); p != nil {
		params.Price = pgtype.Int8{Int64: p.Amount, Valid: true}
		params.Currency = pgconv.StringToPgtype(p.Currency)
	}
	return params, nil
}

// MessageFromInfra fails only on meta that cannot be decoded for its type.
func MessageFromInfra(row pgq.Messages) (*negotiation.Message, error) {
	msgType := negotiation.MessageType(row.Type)
	meta, err := negotiation.DecodeMeta(msgType, row.Meta)
	if err != nil {
		return nil, err
	}
	var price *money.Money
	if row.Price.Valid && row.Currency.Valid {
		price = &money.Money{Amount: row.Price.Int64, Currency: row.Currency.String}
	}
	return negotiation.ReconstructMessage(
		row.ID,
		row.ConversationID,
		row.SenderID,
		msgType,
		row.Content,
		price,
		meta,
		pgconv.TimeFromPgtype(row.CreatedAt),
	), nil
}
