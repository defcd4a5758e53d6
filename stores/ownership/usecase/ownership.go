package usecase

import (
	bCtx "github.com/x-xyz/settlement/base/ctx"
	"github.com/x-xyz/settlement/base/validator"
	"github.com/x-xyz/settlement/domain"
	"github.com/x-xyz/settlement/domain/ownership"
)

type impl struct {
	ownership ownership.Repo
	event     domain.EventRepo
}

func NewOwnershipUsecase(ownershipRepo ownership.Repo, eventRepo domain.EventRepo) ownership.Usecase {
	return &impl{
		ownership: ownershipRepo,
		event:     eventRepo,
	}
}

func (im *impl) Bootstrap(ctx bCtx.Ctx, owner domain.Address) error {
	if _, err := im.ownership.Get(ctx); err == nil {
		return nil
	} else if err != domain.ErrNotFound {
		return err
	}

	if !validator.IsValidAddress(string(owner)) {
		return domain.ErrInvalidAddress
	}

	return im.ownership.Upsert(ctx, &ownership.Ownership{
		Key:   ownership.SlotKey,
		Owner: owner.ToLowerPtr(),
	})
}

func (im *impl) Get(ctx bCtx.Ctx) (*ownership.Ownership, error) {
	return im.ownership.Get(ctx)
}

func (im *impl) AssertOwner(ctx bCtx.Ctx, caller domain.Address) error {
	slot, err := im.ownership.Get(ctx)
	if err == domain.ErrNotFound {
		// renounced slot locks every owner gated operation
		return domain.ErrUnauthorized
	} else if err != nil {
		return err
	}
	if slot.Owner == nil || !slot.Owner.Equals(caller) {
		return domain.ErrUnauthorized
	}
	return nil
}

func (im *impl) Propose(ctx bCtx.Ctx, caller domain.Address, candidate domain.Address) (*domain.Event, error) {
	if err := im.AssertOwner(ctx, caller); err != nil {
		return nil, err
	}

	if !validator.IsValidAddress(string(candidate)) {
		return nil, domain.ErrInvalidAddress
	}

	slot, err := im.ownership.Get(ctx)
	if err != nil {
		return nil, err
	}

	slot.Pending = candidate.ToLowerPtr()
	if err := im.ownership.Upsert(ctx, slot); err != nil {
		ctx.WithField("err", err).Error("ownership.Upsert failed")
		return nil, err
	}

	event := domain.NewEvent(domain.EventTypeProposeOwner).
		AddNullableAddress("owner", slot.Owner).
		AddNullableAddress("pending_owner", slot.Pending)

	if err := im.event.Create(ctx, event); err != nil {
		ctx.WithField("err", err).Warn("event.Create failed")
	}

	return event, nil
}

func (im *impl) Accept(ctx bCtx.Ctx, caller domain.Address) (*domain.Event, error) {
	slot, err := im.ownership.Get(ctx)
	if err == domain.ErrNotFound {
		return nil, domain.ErrUnauthorized
	} else if err != nil {
		return nil, err
	}

	if slot.Pending == nil || !slot.Pending.Equals(caller) {
		return nil, domain.ErrUnauthorized
	}

	slot.Owner = slot.Pending
	slot.Pending = nil
	if err := im.ownership.Upsert(ctx, slot); err != nil {
		ctx.WithField("err", err).Error("ownership.Upsert failed")
		return nil, err
	}

	event := domain.NewEvent(domain.EventTypeAcceptOwner).
		AddNullableAddress("owner", slot.Owner)

	if err := im.event.Create(ctx, event); err != nil {
		ctx.WithField("err", err).Warn("event.Create failed")
	}

	return event, nil
}

func (im *impl) Renounce(ctx bCtx.Ctx, caller domain.Address) (*domain.Event, error) {
	if err := im.AssertOwner(ctx, caller); err != nil {
		return nil, err
	}

	// renouncing also drops any pending candidate, the transfer can never
	// complete once the slot is empty
	if err := im.ownership.Upsert(ctx, &ownership.Ownership{
		Key: ownership.SlotKey,
	}); err != nil {
		ctx.WithField("err", err).Error("ownership.Upsert failed")
		return nil, err
	}

	event := domain.NewEvent(domain.EventTypeRenounceOwner).
		AddAttribute("previous_owner", caller.ToLowerStr())

	if err := im.event.Create(ctx, event); err != nil {
		ctx.WithField("err", err).Warn("event.Create failed")
	}

	return event, nil
}
