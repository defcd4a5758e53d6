package usecase

import (
	"strconv"

	bCtx "github.com/x-xyz/settlement/base/ctx"
	"github.com/x-xyz/settlement/base/validator"
	"github.com/x-xyz/settlement/domain"
	"github.com/x-xyz/settlement/domain/market"
	"github.com/x-xyz/settlement/domain/ownership"
)

type impl struct {
	market    market.Repo
	ownership ownership.Usecase
	event     domain.EventRepo
}

func NewMarketUsecase(
	marketRepo market.Repo,
	ownershipUC ownership.Usecase,
	eventRepo domain.EventRepo,
) market.Usecase {
	return &impl{
		market:    marketRepo,
		ownership: ownershipUC,
		event:     eventRepo,
	}
}

func (im *impl) Bootstrap(ctx bCtx.Ctx, value market.Config) error {
	if _, err := im.market.Get(ctx); err == nil {
		return nil
	} else if err != domain.ErrNotFound {
		return err
	}

	if value.TakerFeePercent > 100 {
		return domain.ErrInvalidPercentage
	}
	if !validator.IsValidAddress(string(value.TakerAddress)) {
		return domain.ErrInvalidAddress
	}
	if value.AcceptedDenom == "" {
		return domain.ErrBadParamInput
	}

	value.Key = market.ConfigKey
	value.TakerAddress = value.TakerAddress.ToLower()
	return im.market.Upsert(ctx, &value)
}

func (im *impl) Get(ctx bCtx.Ctx) (*market.Config, error) {
	return im.market.Get(ctx)
}

func (im *impl) GetTakerFee(ctx bCtx.Ctx) (uint64, error) {
	config, err := im.market.Get(ctx)
	if err != nil {
		return 0, err
	}
	return config.TakerFeePercent, nil
}

func (im *impl) UpdateTakerFee(ctx bCtx.Ctx, caller domain.Address, feePercent uint64) (*domain.Event, error) {
	if err := im.ownership.AssertOwner(ctx, caller); err != nil {
		return nil, err
	}

	if feePercent > 100 {
		return nil, domain.ErrInvalidPercentage
	}

	config, err := im.market.Get(ctx)
	if err != nil {
		return nil, err
	}

	previous := config.TakerFeePercent
	config.TakerFeePercent = feePercent
	if err := im.market.Upsert(ctx, config); err != nil {
		ctx.WithField("err", err).Error("market.Upsert failed")
		return nil, err
	}

	event := domain.NewEvent(domain.EventTypeUpdateTakerFee).
		AddAttribute("previous_fee_percent", strconv.FormatUint(previous, 10)).
		AddAttribute("taker_fee_percent", strconv.FormatUint(feePercent, 10))

	if err := im.event.Create(ctx, event); err != nil {
		ctx.WithField("err", err).Warn("event.Create failed")
	}

	return event, nil
}
