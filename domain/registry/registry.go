package registry

import (
	"github.com/x-xyz/settlement/base/ctx"
	"github.com/x-xyz/settlement/domain"
)

// Client is the read-only capability over the external token registry, plus
// the transfer instruction builder used once at purchase completion. The
// registry is never mutated directly, the returned instruction is executed
// by the enclosing environment.
type Client interface {
	OwnerOf(c ctx.Ctx, contract domain.Address, tokenId domain.TokenId) (domain.Address, error)
	IsApproved(c ctx.Ctx, contract domain.Address, tokenId domain.TokenId, operator domain.Address) (bool, error)
	Transfer(contract domain.Address, tokenId domain.TokenId, to domain.Address) domain.TokenTransferInstruction
}
