package usecase

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	bCtx "github.com/x-xyz/settlement/base/ctx"
	"github.com/x-xyz/settlement/base/ptr"
	"github.com/x-xyz/settlement/domain"
	"github.com/x-xyz/settlement/domain/collection"
	collectionMocks "github.com/x-xyz/settlement/domain/collection/mocks"
	marketMocks "github.com/x-xyz/settlement/domain/market/mocks"
	domainMocks "github.com/x-xyz/settlement/domain/mocks"
	ownershipMocks "github.com/x-xyz/settlement/domain/ownership/mocks"
)

const (
	owner    = domain.Address("0x5409ed021d9299bf6814279a6a1411a7e866a631")
	stranger = domain.Address("0x6ecbe1db9ef729cbe972c83fb886247691fb6beb")
	contract = domain.Address("0xbc4ca0eda7647a8ab7c2061c2e118a18a936f13d")
	payout   = domain.Address("0xe36ea790bc9d7ab70c55260c66d52b1eca985f84")
)

type collectionUsecaseTestSuite struct {
	suite.Suite

	collection *collectionMocks.Repo
	market     *marketMocks.Usecase
	ownership  *ownershipMocks.Usecase
	event      *domainMocks.EventRepo
	im         collection.Usecase
}

func TestCollectionUsecase(t *testing.T) {
	suite.Run(t, new(collectionUsecaseTestSuite))
}

func (s *collectionUsecaseTestSuite) SetupTest() {
	s.collection = &collectionMocks.Repo{}
	s.market = &marketMocks.Usecase{}
	s.ownership = &ownershipMocks.Usecase{}
	s.event = &domainMocks.EventRepo{}
	s.im = NewCollectionUsecase(s.collection, s.market, s.ownership, s.event)

	s.ownership.On("AssertOwner", mock.Anything, owner).Return(nil)
	s.ownership.On("AssertOwner", mock.Anything, stranger).Return(domain.ErrUnauthorized)
	s.event.On("Create", mock.Anything, mock.Anything).Return(nil)
}

func (s *collectionUsecaseTestSuite) TestRegister() {
	ctx := bCtx.Background()

	s.market.On("GetTakerFee", mock.Anything).Return(uint64(5), nil)
	s.collection.On("FindOne", mock.Anything, contract).Return(nil, domain.ErrCollectionNotFound)
	s.collection.On("Create", mock.Anything, collection.Collection{
		Erc721Address:         contract,
		RoyaltyPercentage:     ptr.Uint64(10),
		RoyaltyPaymentAddress: payout.ToLowerPtr(),
	}).Return(nil)

	event, err := s.im.Register(ctx, owner, collection.RegisterPayload{
		Erc721Address:         contract,
		RoyaltyPercentage:     ptr.Uint64(10),
		RoyaltyPaymentAddress: payout.ToLowerPtr(),
	})
	s.NoError(err)
	s.Equal(domain.EventTypeRegisterCollection, event.Type)
	s.collection.AssertCalled(s.T(), "Create", mock.Anything, mock.Anything)
}

func (s *collectionUsecaseTestSuite) TestRegisterRendersAbsentRoyaltyAsNull() {
	ctx := bCtx.Background()

	s.collection.On("FindOne", mock.Anything, contract).Return(nil, domain.ErrCollectionNotFound)
	s.collection.On("Create", mock.Anything, mock.Anything).Return(nil)

	event, err := s.im.Register(ctx, owner, collection.RegisterPayload{
		Erc721Address: contract,
	})
	s.NoError(err)

	attrs := map[string]string{}
	for _, attr := range event.Attributes {
		attrs[attr.Key] = attr.Value
	}
	s.Equal("null", attrs["royalty_percentage"])
	s.Equal("null", attrs["royalty_payment_address"])
}

func (s *collectionUsecaseTestSuite) TestRegisterUnauthorized() {
	ctx := bCtx.Background()

	_, err := s.im.Register(ctx, stranger, collection.RegisterPayload{
		Erc721Address: contract,
	})
	s.Equal(domain.ErrUnauthorized, err)
	s.collection.AssertNotCalled(s.T(), "Create", mock.Anything, mock.Anything)
}

func (s *collectionUsecaseTestSuite) TestRegisterDuplicate() {
	ctx := bCtx.Background()

	s.collection.On("FindOne", mock.Anything, contract).Return(&collection.Collection{
		Erc721Address: contract,
	}, nil)

	_, err := s.im.Register(ctx, owner, collection.RegisterPayload{
		Erc721Address: contract,
	})
	s.Equal(domain.ErrCollectionAlreadyRegistered, err)
}

func (s *collectionUsecaseTestSuite) TestRegisterInvalidRoyaltyPercentage() {
	ctx := bCtx.Background()

	_, err := s.im.Register(ctx, owner, collection.RegisterPayload{
		Erc721Address:     contract,
		RoyaltyPercentage: ptr.Uint64(101),
	})
	s.Equal(domain.ErrInvalidPercentage, err)
}

func (s *collectionUsecaseTestSuite) TestRegisterRoyaltyPlusFeeTooHigh() {
	ctx := bCtx.Background()

	s.market.On("GetTakerFee", mock.Anything).Return(uint64(5), nil)

	_, err := s.im.Register(ctx, owner, collection.RegisterPayload{
		Erc721Address:     contract,
		RoyaltyPercentage: ptr.Uint64(96),
	})
	s.Equal(domain.ErrRoyaltyTooHigh, err)
}

func (s *collectionUsecaseTestSuite) TestRegisterInvalidPayoutAddress() {
	ctx := bCtx.Background()

	bad := domain.Address("not-an-address")
	_, err := s.im.Register(ctx, owner, collection.RegisterPayload{
		Erc721Address:         contract,
		RoyaltyPaymentAddress: &bad,
	})
	s.Equal(domain.ErrInvalidAddress, err)
}

func (s *collectionUsecaseTestSuite) TestUpdateNotFound() {
	ctx := bCtx.Background()

	s.collection.On("FindOne", mock.Anything, contract).Return(nil, domain.ErrCollectionNotFound)

	_, err := s.im.Update(ctx, owner, collection.UpdatePayload{
		Erc721Address: contract,
	})
	s.Equal(domain.ErrCollectionNotFound, err)
}

func (s *collectionUsecaseTestSuite) TestUpdateReplacesWholeRecord() {
	ctx := bCtx.Background()

	s.collection.On("FindOne", mock.Anything, contract).Return(&collection.Collection{
		Erc721Address:         contract,
		RoyaltyPercentage:     ptr.Uint64(10),
		RoyaltyPaymentAddress: payout.ToLowerPtr(),
	}, nil)
	s.collection.On("Update", mock.Anything, collection.Collection{
		Erc721Address: contract,
		IsPaused:      true,
	}).Return(nil)

	event, err := s.im.Update(ctx, owner, collection.UpdatePayload{
		Erc721Address: contract,
		IsPaused:      true,
	})
	s.NoError(err)
	s.Equal(domain.EventTypeUpdateCollection, event.Type)
	// omitted royalty fields are cleared, not merged
	s.collection.AssertCalled(s.T(), "Update", mock.Anything, collection.Collection{
		Erc721Address: contract,
		IsPaused:      true,
	})
}
