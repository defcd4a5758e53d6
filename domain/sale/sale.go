package sale

import (
	"github.com/x-xyz/settlement/base/ctx"
	"github.com/x-xyz/settlement/domain"
)

type SaleId struct {
	Erc721Address domain.Address `json:"erc721Address" bson:"erc721Address" param:"contract"`
	TokenId       domain.TokenId `json:"tokenId" bson:"tokenId" param:"tokenId"`
}

// Sale is one listed token. OwnerAddress is the lister captured at listing
// time, a cached claim: custody can move off-marketplace without the record
// noticing, and buy intentionally pays the captured address anyway.
type Sale struct {
	Erc721Address domain.Address `json:"erc721Address" bson:"erc721Address"`
	TokenId       domain.TokenId `json:"tokenId" bson:"tokenId"`
	OwnerAddress  domain.Address `json:"ownerAddress" bson:"ownerAddress"`
	Price         domain.Coin    `json:"price" bson:"price"`
}

func (s *Sale) ToId() SaleId {
	return SaleId{
		Erc721Address: s.Erc721Address,
		TokenId:       s.TokenId,
	}
}

type UpsertPayload struct {
	Erc721Address domain.Address `json:"-"`
	TokenId       domain.TokenId `json:"-"`
	Price         domain.Coin    `json:"price" validate:"required"`
}

// SettlementResult carries everything a successful buy schedules: the fund
// split, the registry transfer moving the token to the buyer, and the
// structured event.
type SettlementResult struct {
	BankSends     []domain.BankSendInstruction    `json:"bankSends"`
	TokenTransfer domain.TokenTransferInstruction `json:"tokenTransfer"`
	Event         *domain.Event                   `json:"event"`
}

type Repo interface {
	FindOne(c ctx.Ctx, id SaleId) (*Sale, error)
	Upsert(c ctx.Ctx, value *Sale) error
	// Remove returns domain.ErrSaleDoesNotExist when nothing matches
	Remove(c ctx.Ctx, id SaleId) error
	FindAll(c ctx.Ctx, offset, limit int) ([]*Sale, error)
}

type Usecase interface {
	// Upsert is the shared create/update entry: save-or-replace, gated by
	// on-chain ownership and marketplace approval.
	Upsert(c ctx.Ctx, caller domain.Address, payload UpsertPayload) (*domain.Event, error)
	// Remove is gated by current registry ownership, not the listing's
	// cached owner, and is idempotent when the sale is already gone
	Remove(c ctx.Ctx, caller domain.Address, id SaleId) (*domain.Event, error)
	// AdminRemove fails with domain.ErrSaleDoesNotExist when absent
	AdminRemove(c ctx.Ctx, caller domain.Address, id SaleId) (*domain.Event, error)
	Buy(c ctx.Ctx, caller domain.Address, id SaleId, funds []domain.Coin) (*SettlementResult, error)
	Get(c ctx.Ctx, id SaleId) (*Sale, error)
	FindAll(c ctx.Ctx, offset, limit int) ([]*Sale, error)
}
