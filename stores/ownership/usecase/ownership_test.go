package usecase

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	bCtx "github.com/x-xyz/settlement/base/ctx"
	"github.com/x-xyz/settlement/domain"
	domainMocks "github.com/x-xyz/settlement/domain/mocks"
	"github.com/x-xyz/settlement/domain/ownership"
	ownershipMocks "github.com/x-xyz/settlement/domain/ownership/mocks"
)

const (
	admin     = domain.Address("0x5409ed021d9299bf6814279a6a1411a7e866a631")
	candidate = domain.Address("0x6ecbe1db9ef729cbe972c83fb886247691fb6beb")
	stranger  = domain.Address("0xe36ea790bc9d7ab70c55260c66d52b1eca985f84")
)

type ownershipUsecaseTestSuite struct {
	suite.Suite

	ownership *ownershipMocks.Repo
	event     *domainMocks.EventRepo
	im        ownership.Usecase
}

func TestOwnershipUsecase(t *testing.T) {
	suite.Run(t, new(ownershipUsecaseTestSuite))
}

func (s *ownershipUsecaseTestSuite) SetupTest() {
	s.ownership = &ownershipMocks.Repo{}
	s.event = &domainMocks.EventRepo{}
	s.im = NewOwnershipUsecase(s.ownership, s.event)

	s.event.On("Create", mock.Anything, mock.Anything).Return(nil)
}

func (s *ownershipUsecaseTestSuite) slot(owner, pending *domain.Address) *ownership.Ownership {
	return &ownership.Ownership{
		Key:     ownership.SlotKey,
		Owner:   owner,
		Pending: pending,
	}
}

func (s *ownershipUsecaseTestSuite) TestBootstrapSeedsEmptySlot() {
	ctx := bCtx.Background()

	s.ownership.On("Get", mock.Anything).Return(nil, domain.ErrNotFound)
	s.ownership.On("Upsert", mock.Anything, s.slot(admin.ToLowerPtr(), nil)).Return(nil)

	s.NoError(s.im.Bootstrap(ctx, admin))
	s.ownership.AssertCalled(s.T(), "Upsert", mock.Anything, mock.Anything)
}

func (s *ownershipUsecaseTestSuite) TestBootstrapIsNoopWhenSeeded() {
	ctx := bCtx.Background()

	s.ownership.On("Get", mock.Anything).Return(s.slot(admin.ToLowerPtr(), nil), nil)

	s.NoError(s.im.Bootstrap(ctx, candidate))
	s.ownership.AssertNotCalled(s.T(), "Upsert", mock.Anything, mock.Anything)
}

func (s *ownershipUsecaseTestSuite) TestAssertOwner() {
	ctx := bCtx.Background()

	s.ownership.On("Get", mock.Anything).Return(s.slot(admin.ToLowerPtr(), nil), nil)

	s.NoError(s.im.AssertOwner(ctx, admin))
	s.Equal(domain.ErrUnauthorized, s.im.AssertOwner(ctx, stranger))
}

func (s *ownershipUsecaseTestSuite) TestAssertOwnerOnRenouncedSlot() {
	ctx := bCtx.Background()

	s.ownership.On("Get", mock.Anything).Return(s.slot(nil, nil), nil)

	s.Equal(domain.ErrUnauthorized, s.im.AssertOwner(ctx, admin))
}

func (s *ownershipUsecaseTestSuite) TestProposeSetsPending() {
	ctx := bCtx.Background()

	s.ownership.On("Get", mock.Anything).Return(s.slot(admin.ToLowerPtr(), nil), nil)
	s.ownership.On("Upsert", mock.Anything, s.slot(admin.ToLowerPtr(), candidate.ToLowerPtr())).Return(nil)

	event, err := s.im.Propose(ctx, admin, candidate)
	s.NoError(err)
	s.Equal(domain.EventTypeProposeOwner, event.Type)
}

func (s *ownershipUsecaseTestSuite) TestProposeReplacesEarlierCandidate() {
	ctx := bCtx.Background()

	s.ownership.On("Get", mock.Anything).Return(s.slot(admin.ToLowerPtr(), stranger.ToLowerPtr()), nil)
	s.ownership.On("Upsert", mock.Anything, s.slot(admin.ToLowerPtr(), candidate.ToLowerPtr())).Return(nil)

	_, err := s.im.Propose(ctx, admin, candidate)
	s.NoError(err)
	s.ownership.AssertCalled(s.T(), "Upsert", mock.Anything, s.slot(admin.ToLowerPtr(), candidate.ToLowerPtr()))
}

func (s *ownershipUsecaseTestSuite) TestProposeUnauthorized() {
	ctx := bCtx.Background()

	s.ownership.On("Get", mock.Anything).Return(s.slot(admin.ToLowerPtr(), nil), nil)

	_, err := s.im.Propose(ctx, stranger, candidate)
	s.Equal(domain.ErrUnauthorized, err)
}

func (s *ownershipUsecaseTestSuite) TestAcceptPromotesCandidate() {
	ctx := bCtx.Background()

	s.ownership.On("Get", mock.Anything).Return(s.slot(admin.ToLowerPtr(), candidate.ToLowerPtr()), nil)
	s.ownership.On("Upsert", mock.Anything, s.slot(candidate.ToLowerPtr(), nil)).Return(nil)

	event, err := s.im.Accept(ctx, candidate)
	s.NoError(err)
	s.Equal(domain.EventTypeAcceptOwner, event.Type)
}

func (s *ownershipUsecaseTestSuite) TestAcceptWithoutProposalFails() {
	ctx := bCtx.Background()

	s.ownership.On("Get", mock.Anything).Return(s.slot(admin.ToLowerPtr(), nil), nil)

	_, err := s.im.Accept(ctx, candidate)
	s.Equal(domain.ErrUnauthorized, err)
}

func (s *ownershipUsecaseTestSuite) TestAcceptByWrongCallerFails() {
	ctx := bCtx.Background()

	s.ownership.On("Get", mock.Anything).Return(s.slot(admin.ToLowerPtr(), candidate.ToLowerPtr()), nil)

	_, err := s.im.Accept(ctx, stranger)
	s.Equal(domain.ErrUnauthorized, err)
	// the current owner cannot accept on the candidate's behalf either
	_, err = s.im.Accept(ctx, admin)
	s.Equal(domain.ErrUnauthorized, err)
}

func (s *ownershipUsecaseTestSuite) TestRenounceClearsOwnerAndPending() {
	ctx := bCtx.Background()

	s.ownership.On("Get", mock.Anything).Return(s.slot(admin.ToLowerPtr(), candidate.ToLowerPtr()), nil)
	s.ownership.On("Upsert", mock.Anything, s.slot(nil, nil)).Return(nil)

	event, err := s.im.Renounce(ctx, admin)
	s.NoError(err)
	s.Equal(domain.EventTypeRenounceOwner, event.Type)
	s.ownership.AssertCalled(s.T(), "Upsert", mock.Anything, s.slot(nil, nil))
}
