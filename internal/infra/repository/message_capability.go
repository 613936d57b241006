package repository

import (
	"context"
	"log/slog"
	"strings"

	"rental-market/internal/domain/negotiation"
	"rental-market/internal/infra"
	"rental-market/internal/infra/pgq"
	"rental-market/internal/pkg/pgconv"
	"rental-market/internal/usecase/shared"
)

const (
	messagesTable          = "messages"
	messagesTypeConstraint = "messages_type_check"
)

type CapabilityQueries interface {
	GetConstraintDefinition(ctx context.Context, db pgq.DBTX, arg pgq.GetConstraintDefinitionParams) (string, error)
}

// ProbeMessageCapability reads the message type constraint once. Typed
// answers are supported when the constraint is absent or lists both answer
// types.
func ProbeMessageCapability(ctx context.Context, queries CapabilityQueries, db pgq.DBTX) (shared.StaticCapability, error) {
	def, err := queries.GetConstraintDefinition(ctx, db, pgq.GetConstraintDefinitionParams{
		TableName:      messagesTable,
		ConstraintName: messagesTypeConstraint,
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return shared.StaticCapability(true), nil
		}
		return false, infra.WrapRepoErr("failed to read message type constraint", err)
	}

	supported := typedAnswersAllowed(def)
	slog.Info("message capability probed",
		slog.Bool("typed_answers", supported),
		slog.String("constraint", messagesTypeConstraint))
	return shared.StaticCapability(supported), nil
}

func typedAnswersAllowed(constraintDef string) bool {
	for _, t := range []negotiation.MessageType{negotiation.TypeOfferAccept, negotiation.TypeOfferReject} {
		if !strings.Contains(constraintDef, "'"+string(t)+"'") {
			return false
		}
	}
	return true
}
