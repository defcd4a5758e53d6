package ownership

import (
	"github.com/x-xyz/settlement/base/ctx"
	"github.com/x-xyz/settlement/domain"
)

// SlotKey is the fixed selector of the singleton ownership document
const SlotKey = "owner"

// Ownership is the admin-principal slot with a two-phase transfer protocol.
// The slot is in one of three states: no owner (renounced), an active owner,
// or an active owner with a pending candidate.
type Ownership struct {
	Key     string          `json:"-" bson:"key"`
	Owner   *domain.Address `json:"owner" bson:"owner"`
	Pending *domain.Address `json:"pending" bson:"pending"`
}

type Repo interface {
	Get(c ctx.Ctx) (*Ownership, error)
	Upsert(c ctx.Ctx, value *Ownership) error
}

type Usecase interface {
	// Bootstrap seeds the owner slot when empty and is a no-op otherwise
	Bootstrap(c ctx.Ctx, owner domain.Address) error
	Get(c ctx.Ctx) (*Ownership, error)
	// AssertOwner returns domain.ErrUnauthorized unless caller is the active owner
	AssertOwner(c ctx.Ctx, caller domain.Address) error
	Propose(c ctx.Ctx, caller domain.Address, candidate domain.Address) (*domain.Event, error)
	// Accept may only be called by the pending candidate
	Accept(c ctx.Ctx, caller domain.Address) (*domain.Event, error)
	Renounce(c ctx.Ctx, caller domain.Address) (*domain.Event, error)
}
