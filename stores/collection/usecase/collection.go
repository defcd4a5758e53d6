package usecase

import (
	bCtx "github.com/x-xyz/settlement/base/ctx"
	"github.com/x-xyz/settlement/base/log"
	"github.com/x-xyz/settlement/base/validator"
	"github.com/x-xyz/settlement/domain"
	"github.com/x-xyz/settlement/domain/collection"
	"github.com/x-xyz/settlement/domain/market"
	"github.com/x-xyz/settlement/domain/ownership"
)

type impl struct {
	collection collection.Repo
	market     market.Usecase
	ownership  ownership.Usecase
	event      domain.EventRepo
}

func NewCollectionUsecase(
	collectionRepo collection.Repo,
	marketUC market.Usecase,
	ownershipUC ownership.Usecase,
	eventRepo domain.EventRepo,
) collection.Usecase {
	return &impl{
		collection: collectionRepo,
		market:     marketUC,
		ownership:  ownershipUC,
		event:      eventRepo,
	}
}

// checkRoyalty validates the royalty pair against the current taker fee.
// The combined percentage can never exceed the whole sale price.
func (im *impl) checkRoyalty(ctx bCtx.Ctx, percentage *uint64, paymentAddress *domain.Address) error {
	if percentage != nil {
		if *percentage > 100 {
			return domain.ErrInvalidPercentage
		}
		takerFee, err := im.market.GetTakerFee(ctx)
		if err != nil {
			return err
		}
		if takerFee+*percentage > 100 {
			return domain.ErrRoyaltyTooHigh
		}
	}
	if paymentAddress != nil && !validator.IsValidAddress(string(*paymentAddress)) {
		return domain.ErrInvalidAddress
	}
	return nil
}

func (im *impl) Register(ctx bCtx.Ctx, caller domain.Address, payload collection.RegisterPayload) (*domain.Event, error) {
	if err := im.ownership.AssertOwner(ctx, caller); err != nil {
		return nil, err
	}

	if !validator.IsValidAddress(string(payload.Erc721Address)) {
		return nil, domain.ErrInvalidAddress
	}

	if err := im.checkRoyalty(ctx, payload.RoyaltyPercentage, payload.RoyaltyPaymentAddress); err != nil {
		return nil, err
	}

	if _, err := im.collection.FindOne(ctx, payload.Erc721Address); err == nil {
		return nil, domain.ErrCollectionAlreadyRegistered
	} else if err != domain.ErrCollectionNotFound {
		ctx.WithField("err", err).Error("collection.FindOne failed")
		return nil, err
	}

	value := collection.Collection{
		Erc721Address:         payload.Erc721Address.ToLower(),
		RoyaltyPercentage:     payload.RoyaltyPercentage,
		RoyaltyPaymentAddress: payload.RoyaltyPaymentAddress,
	}
	if value.RoyaltyPaymentAddress != nil {
		value.RoyaltyPaymentAddress = value.RoyaltyPaymentAddress.ToLowerPtr()
	}

	if err := im.collection.Create(ctx, value); err != nil {
		ctx.WithFields(log.Fields{
			"err":     err,
			"address": payload.Erc721Address,
		}).Error("collection.Create failed")
		return nil, err
	}

	event := domain.NewEvent(domain.EventTypeRegisterCollection).
		AddAttribute("erc721_address", value.Erc721Address.ToLowerStr()).
		AddNullableUint("royalty_percentage", value.RoyaltyPercentage).
		AddNullableAddress("royalty_payment_address", value.RoyaltyPaymentAddress)

	if err := im.event.Create(ctx, event); err != nil {
		ctx.WithField("err", err).Warn("event.Create failed")
	}

	return event, nil
}

func (im *impl) Update(ctx bCtx.Ctx, caller domain.Address, payload collection.UpdatePayload) (*domain.Event, error) {
	if err := im.ownership.AssertOwner(ctx, caller); err != nil {
		return nil, err
	}

	if err := im.checkRoyalty(ctx, payload.RoyaltyPercentage, payload.RoyaltyPaymentAddress); err != nil {
		return nil, err
	}

	if _, err := im.collection.FindOne(ctx, payload.Erc721Address); err != nil {
		if err != domain.ErrCollectionNotFound {
			ctx.WithField("err", err).Error("collection.FindOne failed")
		}
		return nil, err
	}

	value := collection.Collection{
		Erc721Address:         payload.Erc721Address.ToLower(),
		RoyaltyPercentage:     payload.RoyaltyPercentage,
		RoyaltyPaymentAddress: payload.RoyaltyPaymentAddress,
		IsPaused:              payload.IsPaused,
	}
	if value.RoyaltyPaymentAddress != nil {
		value.RoyaltyPaymentAddress = value.RoyaltyPaymentAddress.ToLowerPtr()
	}

	if err := im.collection.Update(ctx, value); err != nil {
		ctx.WithFields(log.Fields{
			"err":     err,
			"address": payload.Erc721Address,
		}).Error("collection.Update failed")
		return nil, err
	}

	event := domain.NewEvent(domain.EventTypeUpdateCollection).
		AddAttribute("erc721_address", value.Erc721Address.ToLowerStr()).
		AddNullableUint("royalty_percentage", value.RoyaltyPercentage).
		AddNullableAddress("royalty_payment_address", value.RoyaltyPaymentAddress).
		AddAttribute("is_paused", boolString(value.IsPaused))

	if err := im.event.Create(ctx, event); err != nil {
		ctx.WithField("err", err).Warn("event.Create failed")
	}

	return event, nil
}

func (im *impl) Get(ctx bCtx.Ctx, address domain.Address) (*collection.Collection, error) {
	return im.collection.FindOne(ctx, address)
}

func (im *impl) FindAll(ctx bCtx.Ctx, offset, limit int) ([]*collection.Collection, error) {
	return im.collection.FindAll(ctx, offset, limit)
}

func boolString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
