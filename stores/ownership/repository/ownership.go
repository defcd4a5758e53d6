package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	bCtx "github.com/x-xyz/settlement/base/ctx"
	"github.com/x-xyz/settlement/domain"
	"github.com/x-xyz/settlement/domain/ownership"
	"github.com/x-xyz/settlement/service/query"
)

type ownershipMongoRepo struct {
	q query.Mongo
}

func NewOwnershipRepo(q query.Mongo) ownership.Repo {
	return &ownershipMongoRepo{
		q: q,
	}
}

func (r *ownershipMongoRepo) Get(ctx bCtx.Ctx) (*ownership.Ownership, error) {
	res := &ownership.Ownership{}
	selector := bson.M{"key": ownership.SlotKey}
	if err := r.q.FindOne(ctx, domain.TableOwnership, selector, res); err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		ctx.WithField("err", err).Error("q.FindOne failed")
		return nil, err
	}
	return res, nil
}

func (r *ownershipMongoRepo) Upsert(ctx bCtx.Ctx, value *ownership.Ownership) error {
	value.Key = ownership.SlotKey
	selector := bson.M{"key": ownership.SlotKey}
	if err := r.q.Upsert(ctx, domain.TableOwnership, selector, value); err != nil {
		ctx.WithField("err", err).Error("q.Upsert failed")
		return err
	}
	return nil
}
