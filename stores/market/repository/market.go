package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	bCtx "github.com/x-xyz/settlement/base/ctx"
	"github.com/x-xyz/settlement/domain"
	"github.com/x-xyz/settlement/domain/market"
	"github.com/x-xyz/settlement/service/query"
)

type marketMongoRepo struct {
	q query.Mongo
}

func NewMarketRepo(q query.Mongo) market.Repo {
	return &marketMongoRepo{
		q: q,
	}
}

func (r *marketMongoRepo) Get(ctx bCtx.Ctx) (*market.Config, error) {
	res := &market.Config{}
	selector := bson.M{"key": market.ConfigKey}
	if err := r.q.FindOne(ctx, domain.TableMarketConfig, selector, res); err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		ctx.WithField("err", err).Error("q.FindOne failed")
		return nil, err
	}
	return res, nil
}

func (r *marketMongoRepo) Upsert(ctx bCtx.Ctx, value *market.Config) error {
	value.Key = market.ConfigKey
	selector := bson.M{"key": market.ConfigKey}
	if err := r.q.Upsert(ctx, domain.TableMarketConfig, selector, value); err != nil {
		ctx.WithField("err", err).Error("q.Upsert failed")
		return err
	}
	return nil
}
