//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"rental-market/internal/domain/negotiation"
	"rental-market/internal/pkg/clock"
	"rental-market/internal/pkg/errs"
	"rental-market/internal/usecase/queries"
	"rental-market/internal/usecase/shared"
	"rental-market/tests/common/builder"
	queriesmock "rental-market/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestConversationQueries_Negotiation(t *testing.T) {
	b := builder.NewConversationBuilder()
	offer := b.Offer(80)
	accept := b.Accept(offer)
	now := accept.CreatedAt().Add(negotiation.ReservationWindow - time.Hour)

	setup := func(t *testing.T) (*readMocks, queries.ConversationQueries) {
		ctrl := gomock.NewController(t)
		m := newReadMocks(ctrl)
		q := queries.NewConversationQueries(m.uow, queriesmock.NewMockConversationReadStore(ctrl), clock.NewMockClock(now))
		return m, q
	}

	t.Run("buyer sees the countdown in its warning period", func(t *testing.T) {
		m, q := setup(t)
		m.conversations.EXPECT().FindByID(gomock.Any(), b.Conversation.ID()).Return(b.Conversation, nil)
		m.messages.EXPECT().ListByConversation(gomock.Any(), b.Conversation.ID()).Return(b.Messages, nil)

		view, err := q.Negotiation(context.Background(), as(b.Buyer()), b.Conversation.ID())

		require.NoError(t, err)
		assert.Equal(t, string(negotiation.PhaseAccepted), view.Phase)
		assert.Equal(t, string(negotiation.Buyer), view.Role)
		require.NotNil(t, view.AcceptedOfferID)
		assert.Equal(t, offer.ID(), *view.AcceptedOfferID)
		require.NotNil(t, view.AgreedPrice)
		assert.Equal(t, int64(80), view.AgreedPrice.Amount)
		assert.True(t, view.Warning)
		assert.False(t, view.Expired)
		assert.Equal(t, int64(time.Hour.Seconds()), view.RemainingSec)
		assert.True(t, view.CanReserve)
	})

	t.Run("seller cannot reserve", func(t *testing.T) {
		m, q := setup(t)
		m.conversations.EXPECT().FindByID(gomock.Any(), b.Conversation.ID()).Return(b.Conversation, nil)
		m.messages.EXPECT().ListByConversation(gomock.Any(), b.Conversation.ID()).Return(b.Messages, nil)

		view, err := q.Negotiation(context.Background(), as(b.Seller()), b.Conversation.ID())

		require.NoError(t, err)
		assert.False(t, view.CanReserve)
	})

	t.Run("outsiders are refused", func(t *testing.T) {
		m, q := setup(t)
		m.conversations.EXPECT().FindByID(gomock.Any(), b.Conversation.ID()).Return(b.Conversation, nil)

		_, err := q.Negotiation(context.Background(), as(uuid.New()), b.Conversation.ID())

		require.Error(t, err)
		assert.True(t, errs.Is(err, shared.ErrForbidden))
	})
}

func TestConversationQueries_Messages(t *testing.T) {
	b := builder.NewConversationBuilder()
	b.Text(b.Buyer())
	offer := b.Offer(90)
	b.SystemReject(offer)

	ctrl := gomock.NewController(t)
	m := newReadMocks(ctrl)
	q := queries.NewConversationQueries(m.uow, queriesmock.NewMockConversationReadStore(ctrl), clock.NewMockClock(fixedNow))
	m.conversations.EXPECT().FindByID(gomock.Any(), b.Conversation.ID()).Return(b.Conversation, nil)
	m.messages.EXPECT().ListByConversation(gomock.Any(), b.Conversation.ID()).Return(b.Messages, nil)

	views, err := q.Messages(context.Background(), as(b.Seller()), b.Conversation.ID())

	require.NoError(t, err)
	require.Len(t, views, 3)
	assert.Equal(t, string(negotiation.TypeText), views[0].Type)
	assert.Equal(t, string(negotiation.TypeOffer), views[1].Type)
	assert.True(t, views[2].IsReject)
	assert.False(t, views[2].IsAccept)
	assert.NotEmpty(t, views[2].Meta)
}

func TestConversationQueries_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := queriesmock.NewMockConversationReadStore(ctrl)
	q := queries.NewConversationQueries(nil, store, clock.NewMockClock(fixedNow))
	userID := uuid.New()
	want := []*queries.ConversationView{{ID: uuid.New()}, {ID: uuid.New()}}
	store.EXPECT().ListByParticipant(gomock.Any(), userID).Return(want, nil)

	got, err := q.List(context.Background(), as(userID))

	require.NoError(t, err)
	assert.Equal(t, want, got)
}
