package collection

import (
	"github.com/x-xyz/settlement/base/ctx"
	"github.com/x-xyz/settlement/domain"
)

// Collection is the per-contract marketplace configuration: an optional
// creator royalty and a pause switch. The external registry remains the
// source of truth for the tokens themselves.
type Collection struct {
	Erc721Address domain.Address `json:"erc721Address" bson:"erc721Address"`
	// RoyaltyPercentage is set iff royalties are intended for the collection.
	// A set percentage without a payment address pays no royalty at
	// settlement time.
	RoyaltyPercentage     *uint64         `json:"royaltyPercentage" bson:"royaltyPercentage"`
	RoyaltyPaymentAddress *domain.Address `json:"royaltyPaymentAddress" bson:"royaltyPaymentAddress"`
	IsPaused              bool            `json:"isPaused" bson:"isPaused"`
}

type RegisterPayload struct {
	Erc721Address         domain.Address  `json:"erc721Address" validate:"required"`
	RoyaltyPercentage     *uint64         `json:"royaltyPercentage"`
	RoyaltyPaymentAddress *domain.Address `json:"royaltyPaymentAddress"`
}

// UpdatePayload replaces the whole record, it is not a merge.
type UpdatePayload struct {
	Erc721Address         domain.Address  `json:"-"`
	RoyaltyPercentage     *uint64         `json:"royaltyPercentage"`
	RoyaltyPaymentAddress *domain.Address `json:"royaltyPaymentAddress"`
	IsPaused              bool            `json:"isPaused"`
}

type Repo interface {
	FindOne(c ctx.Ctx, address domain.Address) (*Collection, error)
	Create(c ctx.Ctx, value Collection) error
	Update(c ctx.Ctx, value Collection) error
	FindAll(c ctx.Ctx, offset, limit int) ([]*Collection, error)
}

type Usecase interface {
	Register(c ctx.Ctx, caller domain.Address, payload RegisterPayload) (*domain.Event, error)
	Update(c ctx.Ctx, caller domain.Address, payload UpdatePayload) (*domain.Event, error)
	Get(c ctx.Ctx, address domain.Address) (*Collection, error)
	FindAll(c ctx.Ctx, offset, limit int) ([]*Collection, error)
}
