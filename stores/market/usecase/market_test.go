package usecase

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	bCtx "github.com/x-xyz/settlement/base/ctx"
	"github.com/x-xyz/settlement/domain"
	"github.com/x-xyz/settlement/domain/market"
	marketMocks "github.com/x-xyz/settlement/domain/market/mocks"
	domainMocks "github.com/x-xyz/settlement/domain/mocks"
	ownershipMocks "github.com/x-xyz/settlement/domain/ownership/mocks"
)

const (
	admin    = domain.Address("0x5409ed021d9299bf6814279a6a1411a7e866a631")
	stranger = domain.Address("0x6ecbe1db9ef729cbe972c83fb886247691fb6beb")
	taker    = domain.Address("0x9e56625509c2f60af937f23b7b532600390e8c8b")
)

type marketUsecaseTestSuite struct {
	suite.Suite

	market    *marketMocks.Repo
	ownership *ownershipMocks.Usecase
	event     *domainMocks.EventRepo
	im        market.Usecase
}

func TestMarketUsecase(t *testing.T) {
	suite.Run(t, new(marketUsecaseTestSuite))
}

func (s *marketUsecaseTestSuite) SetupTest() {
	s.market = &marketMocks.Repo{}
	s.ownership = &ownershipMocks.Usecase{}
	s.event = &domainMocks.EventRepo{}
	s.im = NewMarketUsecase(s.market, s.ownership, s.event)

	s.ownership.On("AssertOwner", mock.Anything, admin).Return(nil)
	s.ownership.On("AssertOwner", mock.Anything, stranger).Return(domain.ErrUnauthorized)
	s.event.On("Create", mock.Anything, mock.Anything).Return(nil)
}

func (s *marketUsecaseTestSuite) TestBootstrapSeedsEmptyConfig() {
	ctx := bCtx.Background()

	s.market.On("Get", mock.Anything).Return(nil, domain.ErrNotFound)
	s.market.On("Upsert", mock.Anything, &market.Config{
		Key:             market.ConfigKey,
		TakerFeePercent: 5,
		TakerAddress:    taker,
		AcceptedDenom:   "uusd",
	}).Return(nil)

	err := s.im.Bootstrap(ctx, market.Config{
		TakerFeePercent: 5,
		TakerAddress:    taker,
		AcceptedDenom:   "uusd",
	})
	s.NoError(err)
	s.market.AssertCalled(s.T(), "Upsert", mock.Anything, mock.Anything)
}

func (s *marketUsecaseTestSuite) TestBootstrapIsNoopWhenSeeded() {
	ctx := bCtx.Background()

	s.market.On("Get", mock.Anything).Return(&market.Config{
		Key:             market.ConfigKey,
		TakerFeePercent: 5,
		TakerAddress:    taker,
		AcceptedDenom:   "uusd",
	}, nil)

	err := s.im.Bootstrap(ctx, market.Config{
		TakerFeePercent: 7,
		TakerAddress:    taker,
		AcceptedDenom:   "uusd",
	})
	s.NoError(err)
	s.market.AssertNotCalled(s.T(), "Upsert", mock.Anything, mock.Anything)
}

func (s *marketUsecaseTestSuite) TestBootstrapRejectsInvalidFee() {
	ctx := bCtx.Background()

	s.market.On("Get", mock.Anything).Return(nil, domain.ErrNotFound)

	err := s.im.Bootstrap(ctx, market.Config{
		TakerFeePercent: 101,
		TakerAddress:    taker,
		AcceptedDenom:   "uusd",
	})
	s.Equal(domain.ErrInvalidPercentage, err)
}

func (s *marketUsecaseTestSuite) TestUpdateTakerFee() {
	ctx := bCtx.Background()

	s.market.On("Get", mock.Anything).Return(&market.Config{
		Key:             market.ConfigKey,
		TakerFeePercent: 5,
		TakerAddress:    taker,
		AcceptedDenom:   "uusd",
	}, nil)
	s.market.On("Upsert", mock.Anything, &market.Config{
		Key:             market.ConfigKey,
		TakerFeePercent: 7,
		TakerAddress:    taker,
		AcceptedDenom:   "uusd",
	}).Return(nil)

	event, err := s.im.UpdateTakerFee(ctx, admin, 7)
	s.NoError(err)
	s.Equal(domain.EventTypeUpdateTakerFee, event.Type)
}

func (s *marketUsecaseTestSuite) TestUpdateTakerFeeUnauthorized() {
	ctx := bCtx.Background()

	_, err := s.im.UpdateTakerFee(ctx, stranger, 7)
	s.Equal(domain.ErrUnauthorized, err)
	s.market.AssertNotCalled(s.T(), "Upsert", mock.Anything, mock.Anything)
}

func (s *marketUsecaseTestSuite) TestUpdateTakerFeeRejectsOverHundred() {
	ctx := bCtx.Background()

	_, err := s.im.UpdateTakerFee(ctx, admin, 101)
	s.Equal(domain.ErrInvalidPercentage, err)
}
