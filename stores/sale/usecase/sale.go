package usecase

import (
	"math/big"

	bCtx "github.com/x-xyz/settlement/base/ctx"
	"github.com/x-xyz/settlement/base/log"
	"github.com/x-xyz/settlement/base/validator"
	"github.com/x-xyz/settlement/domain"
	"github.com/x-xyz/settlement/domain/collection"
	"github.com/x-xyz/settlement/domain/market"
	"github.com/x-xyz/settlement/domain/ownership"
	"github.com/x-xyz/settlement/domain/registry"
	"github.com/x-xyz/settlement/domain/sale"
	"github.com/x-xyz/settlement/service/query"
)

type impl struct {
	sale       sale.Repo
	collection collection.Repo
	market     market.Usecase
	ownership  ownership.Usecase
	registry   registry.Client
	event      domain.EventRepo
	q          query.Mongo
	operator   domain.Address
}

func NewSaleUsecase(
	saleRepo sale.Repo,
	collectionRepo collection.Repo,
	marketUC market.Usecase,
	ownershipUC ownership.Usecase,
	registryClient registry.Client,
	eventRepo domain.EventRepo,
	q query.Mongo,
	operator domain.Address,
) sale.Usecase {
	return &impl{
		sale:       saleRepo,
		collection: collectionRepo,
		market:     marketUC,
		ownership:  ownershipUC,
		registry:   registryClient,
		event:      eventRepo,
		q:          q,
		operator:   operator,
	}
}

// checkNotPaused lets listings and purchases through for unregistered
// collections, only an explicit pause blocks them.
func (im *impl) checkNotPaused(ctx bCtx.Ctx, contract domain.Address) error {
	coll, err := im.collection.FindOne(ctx, contract)
	if err == domain.ErrCollectionNotFound {
		return nil
	} else if err != nil {
		return err
	}
	if coll.IsPaused {
		return domain.ErrCollectionPaused
	}
	return nil
}

func (im *impl) Upsert(ctx bCtx.Ctx, caller domain.Address, payload sale.UpsertPayload) (*domain.Event, error) {
	if !validator.IsValidAddress(string(payload.Erc721Address)) {
		return nil, domain.ErrInvalidAddress
	}
	if _, err := payload.TokenId.ToBig(); err != nil {
		return nil, domain.ErrBadParamInput
	}

	config, err := im.market.Get(ctx)
	if err != nil {
		return nil, err
	}
	if payload.Price.Denom != config.AcceptedDenom {
		return nil, domain.ErrDenomNotSupported
	}
	if amount, err := payload.Price.AmountBig(); err != nil {
		return nil, err
	} else if amount.Sign() == 0 {
		return nil, domain.ErrBadParamInput
	}

	if err := im.checkNotPaused(ctx, payload.Erc721Address); err != nil {
		return nil, err
	}

	tokenOwner, err := im.registry.OwnerOf(ctx, payload.Erc721Address, payload.TokenId)
	if err != nil {
		return nil, err
	}
	if !tokenOwner.Equals(caller) {
		return nil, domain.ErrUnauthorized
	}

	approved, err := im.registry.IsApproved(ctx, payload.Erc721Address, payload.TokenId, im.operator)
	if err != nil {
		return nil, err
	}
	if !approved {
		return nil, domain.ErrNotApproved
	}

	value := &sale.Sale{
		Erc721Address: payload.Erc721Address.ToLower(),
		TokenId:       payload.TokenId,
		OwnerAddress:  caller.ToLower(),
		Price:         payload.Price,
	}
	if err := im.sale.Upsert(ctx, value); err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"id":  value.ToId(),
		}).Error("sale.Upsert failed")
		return nil, err
	}

	event := domain.NewEvent(domain.EventTypeUpdateSale).
		AddAttribute("erc721_address", value.Erc721Address.ToLowerStr()).
		AddAttribute("token_id", value.TokenId.String()).
		AddAttribute("owner_address", value.OwnerAddress.ToLowerStr()).
		AddAttribute("denom", value.Price.Denom).
		AddAttribute("amount", value.Price.Amount)

	if err := im.event.Create(ctx, event); err != nil {
		ctx.WithField("err", err).Warn("event.Create failed")
	}

	return event, nil
}

func (im *impl) Remove(ctx bCtx.Ctx, caller domain.Address, id sale.SaleId) (*domain.Event, error) {
	existing, err := im.sale.FindOne(ctx, id)
	if err != nil && err != domain.ErrSaleDoesNotExist {
		return nil, err
	}

	if existing != nil {
		// the registry decides who owns the token now, not the listing:
		// after an off-marketplace transfer the new owner delists, the
		// stale lister does not
		tokenOwner, err := im.registry.OwnerOf(ctx, id.Erc721Address, id.TokenId)
		if err != nil {
			return nil, err
		}
		if !tokenOwner.Equals(caller) {
			return nil, domain.ErrUnauthorized
		}
		if err := im.sale.Remove(ctx, id); err != nil && err != domain.ErrSaleDoesNotExist {
			ctx.WithFields(log.Fields{
				"err": err,
				"id":  id,
			}).Error("sale.Remove failed")
			return nil, err
		}
	}

	event := im.removeSaleEvent(id, caller)
	if err := im.event.Create(ctx, event); err != nil {
		ctx.WithField("err", err).Warn("event.Create failed")
	}

	return event, nil
}

func (im *impl) AdminRemove(ctx bCtx.Ctx, caller domain.Address, id sale.SaleId) (*domain.Event, error) {
	if err := im.ownership.AssertOwner(ctx, caller); err != nil {
		return nil, err
	}

	if err := im.sale.Remove(ctx, id); err != nil {
		if err != domain.ErrSaleDoesNotExist {
			ctx.WithFields(log.Fields{
				"err": err,
				"id":  id,
			}).Error("sale.Remove failed")
		}
		return nil, err
	}

	event := im.removeSaleEvent(id, caller)
	if err := im.event.Create(ctx, event); err != nil {
		ctx.WithField("err", err).Warn("event.Create failed")
	}

	return event, nil
}

func (im *impl) removeSaleEvent(id sale.SaleId, caller domain.Address) *domain.Event {
	return domain.NewEvent(domain.EventTypeRemoveSale).
		AddAttribute("erc721_address", id.Erc721Address.ToLowerStr()).
		AddAttribute("token_id", id.TokenId.String()).
		AddAttribute("caller", caller.ToLowerStr())
}

func (im *impl) Buy(ctx bCtx.Ctx, caller domain.Address, id sale.SaleId, funds []domain.Coin) (*sale.SettlementResult, error) {
	var result *sale.SettlementResult

	err := im.q.RunWithTransaction(ctx, func(c bCtx.Ctx) error {
		listed, err := im.sale.FindOne(c, id)
		if err != nil {
			return err
		}

		config, err := im.market.Get(c)
		if err != nil {
			return err
		}

		if err := im.checkNotPaused(c, id.Erc721Address); err != nil {
			return err
		}

		price, err := listed.Price.AmountBig()
		if err != nil {
			return err
		}
		if err := checkExactPayment(funds, listed.Price); err != nil {
			return err
		}

		// remove before paying out so a failed split aborts the whole purchase
		if err := im.sale.Remove(c, id); err != nil {
			return err
		}

		var (
			royaltyPercent uint64
			royaltyAddress *domain.Address
		)
		coll, err := im.collection.FindOne(c, id.Erc721Address)
		if err != nil && err != domain.ErrCollectionNotFound {
			return err
		}
		// an unregistered collection settles without royalty
		if coll != nil && coll.RoyaltyPercentage != nil && coll.RoyaltyPaymentAddress != nil {
			royaltyPercent = *coll.RoyaltyPercentage
			royaltyAddress = coll.RoyaltyPaymentAddress
		}

		if config.TakerFeePercent+royaltyPercent > 100 {
			return domain.ErrRoyaltyTooHigh
		}

		takerAmount := percentOf(price, config.TakerFeePercent)
		royaltyAmount := percentOf(price, royaltyPercent)

		ownerAmount := new(big.Int).Sub(price, takerAmount)
		ownerAmount.Sub(ownerAmount, royaltyAmount)
		if ownerAmount.Sign() < 0 {
			return domain.ErrRoyaltyTooHigh
		}

		bankSends := []domain.BankSendInstruction{}
		appendSend := func(to domain.Address, amount *big.Int) {
			if amount.Sign() == 0 {
				return
			}
			bankSends = append(bankSends, domain.BankSendInstruction{
				ToAddress: to.ToLower(),
				Amount:    amount.String(),
				Denom:     listed.Price.Denom,
			})
		}
		appendSend(config.TakerAddress, takerAmount)
		if royaltyAddress != nil {
			appendSend(*royaltyAddress, royaltyAmount)
		}
		appendSend(listed.OwnerAddress, ownerAmount)

		event := domain.NewEvent(domain.EventTypeBuy).
			AddAttribute("erc721_address", id.Erc721Address.ToLowerStr()).
			AddAttribute("token_id", id.TokenId.String()).
			AddAttribute("buyer", caller.ToLowerStr()).
			AddAttribute("seller", listed.OwnerAddress.ToLowerStr()).
			AddAttribute("denom", listed.Price.Denom).
			AddAttribute("amount", listed.Price.Amount).
			AddAttribute("taker_fee_amount", takerAmount.String()).
			AddAttribute("royalty_amount", royaltyAmount.String())

		if err := im.event.Create(c, event); err != nil {
			c.WithField("err", err).Error("event.Create failed")
			return err
		}

		result = &sale.SettlementResult{
			BankSends:     bankSends,
			TokenTransfer: im.registry.Transfer(id.Erc721Address, id.TokenId, caller),
			Event:         event,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (im *impl) Get(ctx bCtx.Ctx, id sale.SaleId) (*sale.Sale, error) {
	return im.sale.FindOne(ctx, id)
}

func (im *impl) FindAll(ctx bCtx.Ctx, offset, limit int) ([]*sale.Sale, error) {
	return im.sale.FindAll(ctx, offset, limit)
}

// checkExactPayment requires one attached coin of the listed denom matching
// the listed price to the unit, any mismatch fails the same way.
func checkExactPayment(funds []domain.Coin, price domain.Coin) error {
	if len(funds) != 1 {
		return domain.ErrInsufficientFunds
	}
	if funds[0].Denom != price.Denom {
		return domain.ErrInsufficientFunds
	}
	paid, err := funds[0].AmountBig()
	if err != nil {
		return err
	}
	want, err := price.AmountBig()
	if err != nil {
		return err
	}
	if paid.Cmp(want) != 0 {
		return domain.ErrInsufficientFunds
	}
	return nil
}

// percentOf floors, remainders stay with the listing owner
func percentOf(amount *big.Int, percent uint64) *big.Int {
	res := new(big.Int).Mul(amount, new(big.Int).SetUint64(percent))
	return res.Div(res, big.NewInt(100))
}
