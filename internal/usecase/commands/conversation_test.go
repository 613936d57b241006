//go:build unit

package commands_test

import (
	"context"
	"testing"

	"rental-market/internal/domain/auth"
	"rental-market/internal/domain/negotiation"
	"rental-market/internal/domain/user"
	"rental-market/internal/infra"
	"rental-market/internal/pkg/clock"
	"rental-market/internal/pkg/errs"
	"rental-market/internal/usecase/commands"
	"rental-market/internal/usecase/shared"
	"rental-market/tests/common/builder"
	sharedmock "rental-market/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ConversationCommandsTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	m          *txMocks
	capability *sharedmock.MockMessageCapability
	scheduler  *sharedmock.MockDeadlineScheduler
	clock      *clock.MockClock
	cmds       commands.ConversationCommands
}

func (s *ConversationCommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.m = newTxMocks(s.ctrl)
	s.capability = sharedmock.NewMockMessageCapability(s.ctrl)
	s.scheduler = sharedmock.NewMockDeadlineScheduler(s.ctrl)
	s.clock = clock.NewMockClock(fixedNow)
	s.cmds = commands.NewConversationCommands(s.m.uow, s.capability, s.scheduler, s.clock)
}

func as(id uuid.UUID) auth.Principal {
	return auth.Principal{UserID: id, Role: user.RoleMember}
}

func (s *ConversationCommandsTestSuite) TestEnsure() {
	owner := uuid.New()
	l := builder.NewListingBuilder().WithOwner(owner).BuildDomain()

	s.Run("returns the existing conversation", func() {
		s.SetupTest()
		buyer := member()
		existing, err := negotiation.NewConversation(l.ID(), l.Kind(), buyer.UserID, owner, fixedNow)
		s.Require().NoError(err)
		s.m.listings.EXPECT().FindByID(gomock.Any(), l.ID()).Return(l, nil)
		s.m.conversations.EXPECT().FindByParticipants(gomock.Any(), l.ID(), l.Kind(), buyer.UserID, owner).Return(existing, nil)

		result, err := s.cmds.Ensure(context.Background(), buyer, l.ID())

		s.Require().NoError(err)
		s.False(result.Created)
		s.Equal(existing.ID(), result.Conversation.ID())
	})

	s.Run("creates on first contact", func() {
		s.SetupTest()
		buyer := member()
		var events []string
		s.m.expectEvents(&events)
		s.m.listings.EXPECT().FindByID(gomock.Any(), l.ID()).Return(l, nil)
		s.m.conversations.EXPECT().FindByParticipants(gomock.Any(), l.ID(), l.Kind(), buyer.UserID, owner).Return(nil, notFound())
		s.m.conversations.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		result, err := s.cmds.Ensure(context.Background(), buyer, l.ID())

		s.Require().NoError(err)
		s.True(result.Created)
		s.Equal(buyer.UserID, result.Conversation.BuyerID())
		s.Equal(owner, result.Conversation.SellerID())
		s.Equal([]string{shared.EventConversationCreated}, events)
	})

	s.Run("loser of a concurrent create reads the winner", func() {
		s.SetupTest()
		buyer := member()
		winner, err := negotiation.NewConversation(l.ID(), l.Kind(), buyer.UserID, owner, fixedNow)
		s.Require().NoError(err)
		s.m.listings.EXPECT().FindByID(gomock.Any(), l.ID()).Return(l, nil)
		gomock.InOrder(
			s.m.conversations.EXPECT().FindByParticipants(gomock.Any(), l.ID(), l.Kind(), buyer.UserID, owner).Return(nil, notFound()),
			s.m.conversations.EXPECT().Create(gomock.Any(), gomock.Any()).Return(duplicateKey()),
			s.m.conversations.EXPECT().FindByParticipants(gomock.Any(), l.ID(), l.Kind(), buyer.UserID, owner).Return(winner, nil),
		)

		result, err := s.cmds.Ensure(context.Background(), buyer, l.ID())

		s.Require().NoError(err)
		s.False(result.Created)
		s.Equal(winner.ID(), result.Conversation.ID())
	})

	s.Run("owner cannot open a conversation with themselves", func() {
		s.SetupTest()
		s.m.listings.EXPECT().FindByID(gomock.Any(), l.ID()).Return(l, nil)
		s.m.conversations.EXPECT().FindByParticipants(gomock.Any(), l.ID(), l.Kind(), owner, owner).Return(nil, notFound())

		_, err := s.cmds.Ensure(context.Background(), as(owner), l.ID())

		s.Require().Error(err)
		s.ErrorIs(err, negotiation.ErrSelfConversation)
		s.True(errs.Is(err, shared.ErrValidation))
	})

	s.Run("unknown listing", func() {
		s.SetupTest()
		s.m.listings.EXPECT().FindByID(gomock.Any(), l.ID()).Return(nil, notFound())

		_, err := s.cmds.Ensure(context.Background(), member(), l.ID())

		s.Require().Error(err)
		s.True(errs.Is(err, shared.ErrNotFound))
	})
}

func (s *ConversationCommandsTestSuite) TestSendText() {
	s.Run("participant message is stored and touches the conversation", func() {
		s.SetupTest()
		b := builder.NewConversationBuilder()
		var events []string
		s.m.expectEvents(&events)
		s.m.conversations.EXPECT().LockByID(gomock.Any(), b.Conversation.ID()).Return(b.Conversation, nil)
		s.m.messages.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
		s.m.conversations.EXPECT().TouchLastMessage(gomock.Any(), b.Conversation.ID(), fixedNow).Return(nil)

		msg, err := s.cmds.SendText(context.Background(), as(b.Buyer()), b.Conversation.ID(), "hello")

		s.Require().NoError(err)
		s.Equal(negotiation.TypeText, msg.Type())
		s.Equal("hello", msg.Content())
		s.Equal([]string{shared.EventMessageCreated}, events)
	})

	s.Run("outsider is refused", func() {
		s.SetupTest()
		b := builder.NewConversationBuilder()
		s.m.conversations.EXPECT().LockByID(gomock.Any(), b.Conversation.ID()).Return(b.Conversation, nil)

		_, err := s.cmds.SendText(context.Background(), member(), b.Conversation.ID(), "hello")

		s.Require().Error(err)
		s.True(errs.Is(err, shared.ErrForbidden))
	})

	s.Run("unknown conversation", func() {
		s.SetupTest()
		id := uuid.New()
		s.m.conversations.EXPECT().LockByID(gomock.Any(), id).Return(nil, notFound())

		_, err := s.cmds.SendText(context.Background(), member(), id, "hello")

		s.Require().Error(err)
		s.True(errs.Is(err, shared.ErrNotFound))
	})
}

func (s *ConversationCommandsTestSuite) TestProposeOffer() {
	s.Run("second offer while one is pending", func() {
		s.SetupTest()
		b := builder.NewConversationBuilder()
		b.Offer(80)
		l := builder.NewListingBuilder().With(func(lb *builder.ListingBuilder) { lb.ID = b.Conversation.ListingID() }).BuildDomain()
		s.m.conversations.EXPECT().LockByID(gomock.Any(), b.Conversation.ID()).Return(b.Conversation, nil)
		s.m.messages.EXPECT().ListByConversation(gomock.Any(), b.Conversation.ID()).Return(b.Messages, nil)
		s.m.listings.EXPECT().FindByID(gomock.Any(), l.ID()).Return(l, nil)

		_, err := s.cmds.ProposeOffer(context.Background(), as(b.Buyer()), b.Conversation.ID(), commands.ProposeOfferInput{Amount: 75})

		s.Require().Error(err)
		s.ErrorIs(err, negotiation.ErrOfferOutstanding)
		s.True(errs.Is(err, shared.ErrConflict))
	})

	s.Run("first offer is stored in the listing currency", func() {
		s.SetupTest()
		b := builder.NewConversationBuilder()
		l := builder.NewListingBuilder().With(func(lb *builder.ListingBuilder) { lb.ID = b.Conversation.ListingID() }).BuildDomain()
		var events []string
		s.m.expectEvents(&events)
		s.m.conversations.EXPECT().LockByID(gomock.Any(), b.Conversation.ID()).Return(b.Conversation, nil)
		s.m.messages.EXPECT().ListByConversation(gomock.Any(), b.Conversation.ID()).Return(nil, nil)
		s.m.listings.EXPECT().FindByID(gomock.Any(), l.ID()).Return(l, nil)
		s.m.messages.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
		s.m.conversations.EXPECT().TouchLastMessage(gomock.Any(), b.Conversation.ID(), fixedNow).Return(nil)

		msg, err := s.cmds.ProposeOffer(context.Background(), as(b.Buyer()), b.Conversation.ID(), commands.ProposeOfferInput{Amount: 90})

		s.Require().NoError(err)
		s.Equal(negotiation.TypeOffer, msg.Type())
		s.Require().NotNil(msg.Price())
		s.Equal(int64(90), msg.Price().Amount)
		s.Equal(l.Currency(), msg.Price().Currency)
	})
}

func (s *ConversationCommandsTestSuite) TestAcceptOffer() {
	s.Run("typed accept schedules the offer window", func() {
		s.SetupTest()
		b := builder.NewConversationBuilder()
		offer := b.Offer(80)
		var events []string
		s.m.expectEvents(&events)
		s.capability.EXPECT().TypedAnswersSupported().Return(true)
		s.m.conversations.EXPECT().LockByID(gomock.Any(), b.Conversation.ID()).Return(b.Conversation, nil)
		s.m.messages.EXPECT().ListByConversation(gomock.Any(), b.Conversation.ID()).Return(b.Messages, nil)
		s.m.messages.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
		s.m.conversations.EXPECT().TouchLastMessage(gomock.Any(), b.Conversation.ID(), fixedNow).Return(nil)
		s.scheduler.EXPECT().ScheduleOfferWindow(gomock.Any(), b.Conversation.ID(), gomock.Any(), fixedNow).Return(nil)

		msg, err := s.cmds.AcceptOffer(context.Background(), as(b.Seller()), b.Conversation.ID(), offer.ID())

		s.Require().NoError(err)
		s.Equal(negotiation.TypeOfferAccept, msg.Type())
		s.True(negotiation.IsAcceptMsg(msg))
	})

	s.Run("check violation falls back to the system shape", func() {
		s.SetupTest()
		b := builder.NewConversationBuilder()
		offer := b.Offer(80)
		var events []string
		s.m.expectEvents(&events)
		s.capability.EXPECT().TypedAnswersSupported().Return(true)
		s.m.conversations.EXPECT().LockByID(gomock.Any(), b.Conversation.ID()).Return(b.Conversation, nil)
		s.m.messages.EXPECT().ListByConversation(gomock.Any(), b.Conversation.ID()).Return(b.Messages, nil)
		gomock.InOrder(
			s.m.messages.EXPECT().Insert(gomock.Any(), gomock.Any()).
				Return(infra.WrapRepoErr("insert message", nil, infra.KindCheckViolated)),
			s.m.messages.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil),
		)
		s.m.conversations.EXPECT().TouchLastMessage(gomock.Any(), b.Conversation.ID(), fixedNow).Return(nil)
		s.scheduler.EXPECT().ScheduleOfferWindow(gomock.Any(), b.Conversation.ID(), gomock.Any(), fixedNow).Return(nil)

		msg, err := s.cmds.AcceptOffer(context.Background(), as(b.Seller()), b.Conversation.ID(), offer.ID())

		s.Require().NoError(err)
		s.Equal(negotiation.TypeSystem, msg.Type())
		s.True(negotiation.IsAcceptMsg(msg))
	})

	s.Run("scheduler failure does not fail the accept", func() {
		s.SetupTest()
		b := builder.NewConversationBuilder()
		offer := b.Offer(80)
		var events []string
		s.m.expectEvents(&events)
		s.capability.EXPECT().TypedAnswersSupported().Return(false)
		s.m.conversations.EXPECT().LockByID(gomock.Any(), b.Conversation.ID()).Return(b.Conversation, nil)
		s.m.messages.EXPECT().ListByConversation(gomock.Any(), b.Conversation.ID()).Return(b.Messages, nil)
		s.m.messages.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
		s.m.conversations.EXPECT().TouchLastMessage(gomock.Any(), b.Conversation.ID(), fixedNow).Return(nil)
		s.scheduler.EXPECT().ScheduleOfferWindow(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errs.New("redis down"))

		msg, err := s.cmds.AcceptOffer(context.Background(), as(b.Seller()), b.Conversation.ID(), offer.ID())

		s.Require().NoError(err)
		s.Equal(negotiation.TypeSystem, msg.Type())
	})

	s.Run("buyer cannot accept their own offer", func() {
		s.SetupTest()
		b := builder.NewConversationBuilder()
		offer := b.Offer(80)
		s.m.conversations.EXPECT().LockByID(gomock.Any(), b.Conversation.ID()).Return(b.Conversation, nil)
		s.m.messages.EXPECT().ListByConversation(gomock.Any(), b.Conversation.ID()).Return(b.Messages, nil)

		_, err := s.cmds.AcceptOffer(context.Background(), as(b.Buyer()), b.Conversation.ID(), offer.ID())

		s.Require().Error(err)
		s.True(errs.Is(err, shared.ErrForbidden))
	})
}

func (s *ConversationCommandsTestSuite) TestRejectOffer() {
	s.SetupTest()
	b := builder.NewConversationBuilder()
	offer := b.Offer(80)
	var events []string
	s.m.expectEvents(&events)
	s.capability.EXPECT().TypedAnswersSupported().Return(true)
	s.m.conversations.EXPECT().LockByID(gomock.Any(), b.Conversation.ID()).Return(b.Conversation, nil)
	s.m.messages.EXPECT().ListByConversation(gomock.Any(), b.Conversation.ID()).Return(b.Messages, nil)
	s.m.messages.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
	s.m.conversations.EXPECT().TouchLastMessage(gomock.Any(), b.Conversation.ID(), fixedNow).Return(nil)

	msg, err := s.cmds.RejectOffer(context.Background(), as(b.Seller()), b.Conversation.ID(), offer.ID())

	s.Require().NoError(err)
	s.Equal(negotiation.TypeOfferReject, msg.Type())
	s.True(negotiation.IsRejectMsg(msg))
}

func TestConversationCommandsTestSuite(t *testing.T) {
	suite.Run(t, new(ConversationCommandsTestSuite))
}
