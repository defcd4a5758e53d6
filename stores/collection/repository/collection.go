package repository

import (
	bCtx "github.com/x-xyz/settlement/base/ctx"
	"github.com/x-xyz/settlement/base/database/mongoclient"
	"github.com/x-xyz/settlement/base/log"
	"github.com/x-xyz/settlement/domain"
	"github.com/x-xyz/settlement/domain/collection"
	"github.com/x-xyz/settlement/service/query"
)

type collectionMongoRepo struct {
	q query.Mongo
}

func NewCollectionRepo(q query.Mongo) collection.Repo {
	return &collectionMongoRepo{
		q: q,
	}
}

func (r *collectionMongoRepo) FindOne(ctx bCtx.Ctx, address domain.Address) (*collection.Collection, error) {
	res := &collection.Collection{}
	qry, err := mongoclient.MakeBsonM(&collection.Collection{Erc721Address: address.ToLower()})
	if err != nil {
		ctx.WithField("err", err).Error("mongoclient.MakeBsonM failed")
		return nil, err
	}
	if err := r.q.FindOne(ctx, domain.TableCollections, qry, res); err == query.ErrNotFound {
		return nil, domain.ErrCollectionNotFound
	} else if err != nil {
		ctx.WithField("err", err).Error("q.FindOne failed")
		return nil, err
	}
	return res, nil
}

func (r *collectionMongoRepo) Create(ctx bCtx.Ctx, value collection.Collection) error {
	if err := r.q.Insert(ctx, domain.TableCollections, &value); err == query.ErrDuplicateKey {
		return domain.ErrCollectionAlreadyRegistered
	} else if err != nil {
		ctx.WithField("err", err).Error("q.Insert failed")
		return err
	}
	return nil
}

func (r *collectionMongoRepo) Update(ctx bCtx.Ctx, value collection.Collection) error {
	selector, err := mongoclient.MakeBsonM(&collection.Collection{Erc721Address: value.Erc721Address.ToLower()})
	if err != nil {
		ctx.WithField("err", err).Error("mongoclient.MakeBsonM failed")
		return err
	}
	if err := r.q.Upsert(ctx, domain.TableCollections, selector, &value); err != nil {
		ctx.WithFields(log.Fields{
			"err":     err,
			"address": value.Erc721Address,
		}).Error("q.Upsert failed")
		return err
	}
	return nil
}

func (r *collectionMongoRepo) FindAll(ctx bCtx.Ctx, offset, limit int) ([]*collection.Collection, error) {
	res := []*collection.Collection{}
	if err := r.q.Search(ctx, domain.TableCollections, offset, limit, "erc721Address", map[string]interface{}{}, &res); err != nil {
		ctx.WithField("err", err).Error("q.Search failed")
		return nil, err
	}
	return res, nil
}
