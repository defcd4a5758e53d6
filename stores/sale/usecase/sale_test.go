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
	"github.com/x-xyz/settlement/domain/market"
	marketMocks "github.com/x-xyz/settlement/domain/market/mocks"
	domainMocks "github.com/x-xyz/settlement/domain/mocks"
	ownershipMocks "github.com/x-xyz/settlement/domain/ownership/mocks"
	registryMocks "github.com/x-xyz/settlement/domain/registry/mocks"
	"github.com/x-xyz/settlement/domain/sale"
	saleMocks "github.com/x-xyz/settlement/domain/sale/mocks"
	queryMocks "github.com/x-xyz/settlement/service/query/mocks"
)

const (
	admin    = domain.Address("0x5409ed021d9299bf6814279a6a1411a7e866a631")
	seller   = domain.Address("0x6ecbe1db9ef729cbe972c83fb886247691fb6beb")
	buyer    = domain.Address("0xe36ea790bc9d7ab70c55260c66d52b1eca985f84")
	taker    = domain.Address("0x9e56625509c2f60af937f23b7b532600390e8c8b")
	creator  = domain.Address("0xa8dda8d7f5310e4a9e24f8eba77e091ac264f872")
	contract = domain.Address("0xbc4ca0eda7647a8ab7c2061c2e118a18a936f13d")
	operator = domain.Address("0x1dc4c1cefef38a777b15aa20260a54e584b16c48")

	denom = "uusd"
)

var (
	tokenId = domain.TokenId("42")
	saleId  = sale.SaleId{Erc721Address: contract, TokenId: tokenId}
)

type saleUsecaseTestSuite struct {
	suite.Suite

	sale       *saleMocks.Repo
	collection *collectionMocks.Repo
	market     *marketMocks.Usecase
	ownership  *ownershipMocks.Usecase
	registry   *registryMocks.Client
	event      *domainMocks.EventRepo
	q          *queryMocks.Mongo
	im         sale.Usecase
}

func TestSaleUsecase(t *testing.T) {
	suite.Run(t, new(saleUsecaseTestSuite))
}

func (s *saleUsecaseTestSuite) SetupTest() {
	s.sale = &saleMocks.Repo{}
	s.collection = &collectionMocks.Repo{}
	s.market = &marketMocks.Usecase{}
	s.ownership = &ownershipMocks.Usecase{}
	s.registry = &registryMocks.Client{}
	s.event = &domainMocks.EventRepo{}
	s.q = &queryMocks.Mongo{}
	s.im = NewSaleUsecase(s.sale, s.collection, s.market, s.ownership, s.registry, s.event, s.q, operator)

	s.event.On("Create", mock.Anything, mock.Anything).Return(nil)
	s.q.On("RunWithTransaction", mock.Anything, mock.Anything).Return(
		func(c bCtx.Ctx, run func(bCtx.Ctx) error) error {
			return run(c)
		},
	)
	s.registry.On("Transfer", contract, tokenId, buyer).Return(domain.TokenTransferInstruction{
		Erc721Address: contract,
		TokenId:       tokenId,
		ToAddress:     buyer,
	})
}

func (s *saleUsecaseTestSuite) marketConfig(feePercent uint64) {
	s.market.On("Get", mock.Anything).Return(&market.Config{
		Key:             market.ConfigKey,
		TakerFeePercent: feePercent,
		TakerAddress:    taker,
		AcceptedDenom:   denom,
	}, nil)
}

func (s *saleUsecaseTestSuite) listedSale(amount string) *sale.Sale {
	return &sale.Sale{
		Erc721Address: contract,
		TokenId:       tokenId,
		OwnerAddress:  seller,
		Price:         domain.Coin{Denom: denom, Amount: amount},
	}
}

func (s *saleUsecaseTestSuite) royaltyCollection(percent uint64) {
	s.collection.On("FindOne", mock.Anything, contract).Return(&collection.Collection{
		Erc721Address:         contract,
		RoyaltyPercentage:     ptr.Uint64(percent),
		RoyaltyPaymentAddress: creator.ToLowerPtr(),
	}, nil)
}

func (s *saleUsecaseTestSuite) TestBuySplitsFundsThreeWays() {
	ctx := bCtx.Background()

	s.marketConfig(5)
	s.royaltyCollection(10)
	s.sale.On("FindOne", mock.Anything, saleId).Return(s.listedSale("1000"), nil)
	s.sale.On("Remove", mock.Anything, saleId).Return(nil)

	res, err := s.im.Buy(ctx, buyer, saleId, []domain.Coin{{Denom: denom, Amount: "1000"}})
	s.NoError(err)
	s.Equal([]domain.BankSendInstruction{
		{ToAddress: taker, Amount: "50", Denom: denom},
		{ToAddress: creator, Amount: "100", Denom: denom},
		{ToAddress: seller, Amount: "850", Denom: denom},
	}, res.BankSends)
	s.Equal(domain.TokenTransferInstruction{
		Erc721Address: contract,
		TokenId:       tokenId,
		ToAddress:     buyer,
	}, res.TokenTransfer)
	s.Equal(domain.EventTypeBuy, res.Event.Type)
}

func (s *saleUsecaseTestSuite) TestBuyFlooredSplitLeavesRemainderToSeller() {
	ctx := bCtx.Background()

	s.marketConfig(5)
	s.royaltyCollection(10)
	s.sale.On("FindOne", mock.Anything, saleId).Return(s.listedSale("999"), nil)
	s.sale.On("Remove", mock.Anything, saleId).Return(nil)

	res, err := s.im.Buy(ctx, buyer, saleId, []domain.Coin{{Denom: denom, Amount: "999"}})
	s.NoError(err)
	// floor(999*5/100)=49, floor(999*10/100)=99, remainder 851 to seller
	s.Equal("49", res.BankSends[0].Amount)
	s.Equal("99", res.BankSends[1].Amount)
	s.Equal("851", res.BankSends[2].Amount)
}

func (s *saleUsecaseTestSuite) TestBuyUnderpaymentKeepsSale() {
	ctx := bCtx.Background()

	s.marketConfig(5)
	s.collection.On("FindOne", mock.Anything, contract).Return(nil, domain.ErrCollectionNotFound)
	s.sale.On("FindOne", mock.Anything, saleId).Return(s.listedSale("1000"), nil)

	_, err := s.im.Buy(ctx, buyer, saleId, []domain.Coin{{Denom: denom, Amount: "999"}})
	s.Equal(domain.ErrInsufficientFunds, err)
	s.sale.AssertNotCalled(s.T(), "Remove", mock.Anything, mock.Anything)
}

func (s *saleUsecaseTestSuite) TestBuyOverpaymentRejected() {
	ctx := bCtx.Background()

	s.marketConfig(5)
	s.collection.On("FindOne", mock.Anything, contract).Return(nil, domain.ErrCollectionNotFound)
	s.sale.On("FindOne", mock.Anything, saleId).Return(s.listedSale("1000"), nil)

	_, err := s.im.Buy(ctx, buyer, saleId, []domain.Coin{{Denom: denom, Amount: "1001"}})
	s.Equal(domain.ErrInsufficientFunds, err)
}

func (s *saleUsecaseTestSuite) TestBuyWrongDenom() {
	ctx := bCtx.Background()

	s.marketConfig(5)
	s.collection.On("FindOne", mock.Anything, contract).Return(nil, domain.ErrCollectionNotFound)
	s.sale.On("FindOne", mock.Anything, saleId).Return(s.listedSale("1000"), nil)

	_, err := s.im.Buy(ctx, buyer, saleId, []domain.Coin{{Denom: "uluna", Amount: "1000"}})
	s.Equal(domain.ErrInsufficientFunds, err)
	s.sale.AssertNotCalled(s.T(), "Remove", mock.Anything, mock.Anything)
}

func (s *saleUsecaseTestSuite) TestBuyMissingSale() {
	ctx := bCtx.Background()

	s.sale.On("FindOne", mock.Anything, saleId).Return(nil, domain.ErrSaleDoesNotExist)

	_, err := s.im.Buy(ctx, buyer, saleId, []domain.Coin{{Denom: denom, Amount: "1000"}})
	s.Equal(domain.ErrSaleDoesNotExist, err)
}

func (s *saleUsecaseTestSuite) TestBuyUnregisteredCollectionPaysNoRoyalty() {
	ctx := bCtx.Background()

	s.marketConfig(5)
	s.collection.On("FindOne", mock.Anything, contract).Return(nil, domain.ErrCollectionNotFound)
	s.sale.On("FindOne", mock.Anything, saleId).Return(s.listedSale("1000"), nil)
	s.sale.On("Remove", mock.Anything, saleId).Return(nil)

	res, err := s.im.Buy(ctx, buyer, saleId, []domain.Coin{{Denom: denom, Amount: "1000"}})
	s.NoError(err)
	s.Equal([]domain.BankSendInstruction{
		{ToAddress: taker, Amount: "50", Denom: denom},
		{ToAddress: seller, Amount: "950", Denom: denom},
	}, res.BankSends)
}

func (s *saleUsecaseTestSuite) TestBuyRoyaltyWithoutPayoutAddressPaysNoRoyalty() {
	ctx := bCtx.Background()

	s.marketConfig(5)
	s.collection.On("FindOne", mock.Anything, contract).Return(&collection.Collection{
		Erc721Address:     contract,
		RoyaltyPercentage: ptr.Uint64(10),
	}, nil)
	s.sale.On("FindOne", mock.Anything, saleId).Return(s.listedSale("1000"), nil)
	s.sale.On("Remove", mock.Anything, saleId).Return(nil)

	res, err := s.im.Buy(ctx, buyer, saleId, []domain.Coin{{Denom: denom, Amount: "1000"}})
	s.NoError(err)
	s.Len(res.BankSends, 2)
	s.Equal("950", res.BankSends[1].Amount)
}

func (s *saleUsecaseTestSuite) TestBuySkipsZeroTransfers() {
	ctx := bCtx.Background()

	s.marketConfig(0)
	s.collection.On("FindOne", mock.Anything, contract).Return(nil, domain.ErrCollectionNotFound)
	s.sale.On("FindOne", mock.Anything, saleId).Return(s.listedSale("1000"), nil)
	s.sale.On("Remove", mock.Anything, saleId).Return(nil)

	res, err := s.im.Buy(ctx, buyer, saleId, []domain.Coin{{Denom: denom, Amount: "1000"}})
	s.NoError(err)
	s.Equal([]domain.BankSendInstruction{
		{ToAddress: seller, Amount: "1000", Denom: denom},
	}, res.BankSends)
}

func (s *saleUsecaseTestSuite) TestBuyPausedCollection() {
	ctx := bCtx.Background()

	s.marketConfig(5)
	s.collection.On("FindOne", mock.Anything, contract).Return(&collection.Collection{
		Erc721Address: contract,
		IsPaused:      true,
	}, nil)
	s.sale.On("FindOne", mock.Anything, saleId).Return(s.listedSale("1000"), nil)

	_, err := s.im.Buy(ctx, buyer, saleId, []domain.Coin{{Denom: denom, Amount: "1000"}})
	s.Equal(domain.ErrCollectionPaused, err)
	s.sale.AssertNotCalled(s.T(), "Remove", mock.Anything, mock.Anything)
}

func (s *saleUsecaseTestSuite) TestBuyFeePlusRoyaltyOverWholeRejected() {
	ctx := bCtx.Background()

	s.marketConfig(60)
	s.royaltyCollection(50)
	s.sale.On("FindOne", mock.Anything, saleId).Return(s.listedSale("1000"), nil)
	s.sale.On("Remove", mock.Anything, saleId).Return(nil)

	_, err := s.im.Buy(ctx, buyer, saleId, []domain.Coin{{Denom: denom, Amount: "1000"}})
	s.Equal(domain.ErrRoyaltyTooHigh, err)
}

func (s *saleUsecaseTestSuite) TestUpsertListsForTokenOwner() {
	ctx := bCtx.Background()

	s.marketConfig(5)
	s.collection.On("FindOne", mock.Anything, contract).Return(nil, domain.ErrCollectionNotFound)
	s.registry.On("OwnerOf", mock.Anything, contract, tokenId).Return(seller, nil)
	s.registry.On("IsApproved", mock.Anything, contract, tokenId, operator).Return(true, nil)
	s.sale.On("Upsert", mock.Anything, s.listedSale("1000")).Return(nil)

	event, err := s.im.Upsert(ctx, seller, sale.UpsertPayload{
		Erc721Address: contract,
		TokenId:       tokenId,
		Price:         domain.Coin{Denom: denom, Amount: "1000"},
	})
	s.NoError(err)
	s.Equal(domain.EventTypeUpdateSale, event.Type)
}

func (s *saleUsecaseTestSuite) TestUpsertRejectsNonOwner() {
	ctx := bCtx.Background()

	s.marketConfig(5)
	s.collection.On("FindOne", mock.Anything, contract).Return(nil, domain.ErrCollectionNotFound)
	s.registry.On("OwnerOf", mock.Anything, contract, tokenId).Return(seller, nil)

	_, err := s.im.Upsert(ctx, buyer, sale.UpsertPayload{
		Erc721Address: contract,
		TokenId:       tokenId,
		Price:         domain.Coin{Denom: denom, Amount: "1000"},
	})
	s.Equal(domain.ErrUnauthorized, err)
}

func (s *saleUsecaseTestSuite) TestUpsertRequiresApproval() {
	ctx := bCtx.Background()

	s.marketConfig(5)
	s.collection.On("FindOne", mock.Anything, contract).Return(nil, domain.ErrCollectionNotFound)
	s.registry.On("OwnerOf", mock.Anything, contract, tokenId).Return(seller, nil)
	s.registry.On("IsApproved", mock.Anything, contract, tokenId, operator).Return(false, nil)

	_, err := s.im.Upsert(ctx, seller, sale.UpsertPayload{
		Erc721Address: contract,
		TokenId:       tokenId,
		Price:         domain.Coin{Denom: denom, Amount: "1000"},
	})
	s.Equal(domain.ErrNotApproved, err)
}

func (s *saleUsecaseTestSuite) TestUpsertRejectsWrongDenom() {
	ctx := bCtx.Background()

	s.marketConfig(5)

	_, err := s.im.Upsert(ctx, seller, sale.UpsertPayload{
		Erc721Address: contract,
		TokenId:       tokenId,
		Price:         domain.Coin{Denom: "uluna", Amount: "1000"},
	})
	s.Equal(domain.ErrDenomNotSupported, err)
}

func (s *saleUsecaseTestSuite) TestUpsertRejectsZeroPrice() {
	ctx := bCtx.Background()

	s.marketConfig(5)

	_, err := s.im.Upsert(ctx, seller, sale.UpsertPayload{
		Erc721Address: contract,
		TokenId:       tokenId,
		Price:         domain.Coin{Denom: denom, Amount: "0"},
	})
	s.Equal(domain.ErrBadParamInput, err)
}

func (s *saleUsecaseTestSuite) TestRemoveIsIdempotentForOwner() {
	ctx := bCtx.Background()

	s.sale.On("FindOne", mock.Anything, saleId).Return(nil, domain.ErrSaleDoesNotExist)

	event, err := s.im.Remove(ctx, seller, saleId)
	s.NoError(err)
	s.Equal(domain.EventTypeRemoveSale, event.Type)
	s.sale.AssertNotCalled(s.T(), "Remove", mock.Anything, mock.Anything)
}

func (s *saleUsecaseTestSuite) TestRemoveRejectsNonOwner() {
	ctx := bCtx.Background()

	s.sale.On("FindOne", mock.Anything, saleId).Return(s.listedSale("1000"), nil)
	s.registry.On("OwnerOf", mock.Anything, contract, tokenId).Return(seller, nil)

	_, err := s.im.Remove(ctx, buyer, saleId)
	s.Equal(domain.ErrUnauthorized, err)
	s.sale.AssertNotCalled(s.T(), "Remove", mock.Anything, mock.Anything)
}

func (s *saleUsecaseTestSuite) TestRemoveAllowsNewOwnerAfterTransfer() {
	ctx := bCtx.Background()

	// token moved off-marketplace: the listing still names the old seller
	// but the registry says the buyer owns it now
	s.sale.On("FindOne", mock.Anything, saleId).Return(s.listedSale("1000"), nil)
	s.registry.On("OwnerOf", mock.Anything, contract, tokenId).Return(buyer, nil)
	s.sale.On("Remove", mock.Anything, saleId).Return(nil)

	event, err := s.im.Remove(ctx, buyer, saleId)
	s.NoError(err)
	s.Equal(domain.EventTypeRemoveSale, event.Type)
	s.sale.AssertCalled(s.T(), "Remove", mock.Anything, saleId)
}

func (s *saleUsecaseTestSuite) TestRemoveRejectsStaleListerAfterTransfer() {
	ctx := bCtx.Background()

	s.sale.On("FindOne", mock.Anything, saleId).Return(s.listedSale("1000"), nil)
	s.registry.On("OwnerOf", mock.Anything, contract, tokenId).Return(buyer, nil)

	_, err := s.im.Remove(ctx, seller, saleId)
	s.Equal(domain.ErrUnauthorized, err)
	s.sale.AssertNotCalled(s.T(), "Remove", mock.Anything, mock.Anything)
}

func (s *saleUsecaseTestSuite) TestAdminRemoveMissingSaleFails() {
	ctx := bCtx.Background()

	s.ownership.On("AssertOwner", mock.Anything, admin).Return(nil)
	s.sale.On("Remove", mock.Anything, saleId).Return(domain.ErrSaleDoesNotExist)

	_, err := s.im.AdminRemove(ctx, admin, saleId)
	s.Equal(domain.ErrSaleDoesNotExist, err)
}

func (s *saleUsecaseTestSuite) TestAdminRemoveRequiresOwner() {
	ctx := bCtx.Background()

	s.ownership.On("AssertOwner", mock.Anything, buyer).Return(domain.ErrUnauthorized)

	_, err := s.im.AdminRemove(ctx, buyer, saleId)
	s.Equal(domain.ErrUnauthorized, err)
}
