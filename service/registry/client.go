package registry

import (
	"github.com/ethereum/go-ethereum/common"
	"golang.org/x/xerrors"

	xabi "github.com/x-xyz/settlement/base/abi"
	"github.com/x-xyz/settlement/base/ctx"
	"github.com/x-xyz/settlement/base/log"
	"github.com/x-xyz/settlement/domain"
	"github.com/x-xyz/settlement/domain/registry"
	"github.com/x-xyz/settlement/service/chain"
)

type client struct {
	chainId int32
	chain   chain.Client
}

// NewClient returns a registry client reading erc721 state through the
// given chain client.
func NewClient(chainId int32, chainClient chain.Client) registry.Client {
	return &client{
		chainId: chainId,
		chain:   chainClient,
	}
}

func (c *client) OwnerOf(context ctx.Ctx, contract domain.Address, tokenId domain.TokenId) (domain.Address, error) {
	id, err := tokenId.ToBig()
	if err != nil {
		return "", err
	}

	res, err := c.chain.Call(context, c.chainId, common.HexToAddress(string(contract)), nil, xabi.ERC721TokenABI, "ownerOf", id)
	if err != nil {
		context.WithFields(log.Fields{
			"err":      err,
			"contract": contract,
			"tokenId":  tokenId,
		}).Error("ownerOf call failed")
		return "", err
	}

	owner, ok := res[0].(common.Address)
	if !ok {
		return "", xerrors.Errorf("unexpected ownerOf result %v", res[0])
	}
	return domain.Address(owner.Hex()).ToLower(), nil
}

func (c *client) IsApproved(context ctx.Ctx, contract domain.Address, tokenId domain.TokenId, operator domain.Address) (bool, error) {
	id, err := tokenId.ToBig()
	if err != nil {
		return false, err
	}

	contractAddr := common.HexToAddress(string(contract))
	operatorAddr := common.HexToAddress(string(operator))

	res, err := c.chain.Call(context, c.chainId, contractAddr, nil, xabi.ERC721TokenABI, "getApproved", id)
	if err != nil {
		context.WithFields(log.Fields{
			"err":      err,
			"contract": contract,
			"tokenId":  tokenId,
		}).Error("getApproved call failed")
		return false, err
	}
	if approved, ok := res[0].(common.Address); ok && approved == operatorAddr {
		return true, nil
	}

	owner, err := c.OwnerOf(context, contract, tokenId)
	if err != nil {
		return false, err
	}

	res, err = c.chain.Call(context, c.chainId, contractAddr, nil, xabi.ERC721TokenABI, "isApprovedForAll", common.HexToAddress(string(owner)), operatorAddr)
	if err != nil {
		context.WithFields(log.Fields{
			"err":      err,
			"contract": contract,
			"tokenId":  tokenId,
		}).Error("isApprovedForAll call failed")
		return false, err
	}

	approvedForAll, ok := res[0].(bool)
	if !ok {
		return false, xerrors.Errorf("unexpected isApprovedForAll result %v", res[0])
	}
	return approvedForAll, nil
}

func (c *client) Transfer(contract domain.Address, tokenId domain.TokenId, to domain.Address) domain.TokenTransferInstruction {
	return domain.TokenTransferInstruction{
		Erc721Address: contract.ToLower(),
		TokenId:       tokenId,
		ToAddress:     to.ToLower(),
	}
}
