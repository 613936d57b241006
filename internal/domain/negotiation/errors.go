package negotiation

import "errors"

var (
	ErrNotParticipant     = errors.New("user is not a participant of the conversation")
	ErrSelfConversation   = errors.New("cannot open a conversation with yourself")
	ErrNotBuyer           = errors.New("only the buyer can make offers")
	ErrNotCounterpart     = errors.New("only the counterpart can answer an offer")
	ErrOfferOutstanding   = errors.New("an offer is already awaiting an answer")
	ErrThreadClosed       = errors.New("an offer was already accepted in this conversation")
	ErrStaleOffer         = errors.New("offer is no longer the latest unanswered offer")
	ErrInvalidReopen      = errors.New("reopen source must be a rejected offer of this conversation")
	ErrInvalidPrice       = errors.New("offer price must be positive and within the price limit")
	ErrEmptyContent       = errors.New("message content is empty")
	ErrNoAcceptedOffer    = errors.New("no accepted offer in this conversation")
	ErrWindowElapsed      = errors.New("the reservation window for this offer has elapsed")
	ErrInvalidMessageType = errors.New("invalid message type")
	ErrInvalidMeta        = errors.New("invalid message meta")
)
