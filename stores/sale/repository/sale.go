package repository

import (
	bCtx "github.com/x-xyz/settlement/base/ctx"
	"github.com/x-xyz/settlement/base/database/mongoclient"
	"github.com/x-xyz/settlement/base/log"
	"github.com/x-xyz/settlement/domain"
	"github.com/x-xyz/settlement/domain/sale"
	"github.com/x-xyz/settlement/service/query"
)

type saleMongoRepo struct {
	q query.Mongo
}

func NewSaleRepo(q query.Mongo) sale.Repo {
	return &saleMongoRepo{
		q: q,
	}
}

func makeIdSelector(id sale.SaleId) (interface{}, error) {
	return mongoclient.MakeBsonM(&sale.SaleId{
		Erc721Address: id.Erc721Address.ToLower(),
		TokenId:       id.TokenId,
	})
}

func (r *saleMongoRepo) FindOne(ctx bCtx.Ctx, id sale.SaleId) (*sale.Sale, error) {
	res := &sale.Sale{}
	qry, err := makeIdSelector(id)
	if err != nil {
		ctx.WithField("err", err).Error("mongoclient.MakeBsonM failed")
		return nil, err
	}
	if err := r.q.FindOne(ctx, domain.TableSales, qry, res); err == query.ErrNotFound {
		return nil, domain.ErrSaleDoesNotExist
	} else if err != nil {
		ctx.WithField("err", err).Error("q.FindOne failed")
		return nil, err
	}
	return res, nil
}

func (r *saleMongoRepo) Upsert(ctx bCtx.Ctx, value *sale.Sale) error {
	selector, err := makeIdSelector(value.ToId())
	if err != nil {
		ctx.WithField("err", err).Error("mongoclient.MakeBsonM failed")
		return err
	}
	if err := r.q.Upsert(ctx, domain.TableSales, selector, value); err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"id":  value.ToId(),
		}).Error("q.Upsert failed")
		return err
	}
	return nil
}

func (r *saleMongoRepo) Remove(ctx bCtx.Ctx, id sale.SaleId) error {
	selector, err := makeIdSelector(id)
	if err != nil {
		ctx.WithField("err", err).Error("mongoclient.MakeBsonM failed")
		return err
	}
	if err := r.q.Remove(ctx, domain.TableSales, selector); err == query.ErrNotFound {
		return domain.ErrSaleDoesNotExist
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("q.Remove failed")
		return err
	}
	return nil
}

func (r *saleMongoRepo) FindAll(ctx bCtx.Ctx, offset, limit int) ([]*sale.Sale, error) {
	res := []*sale.Sale{}
	if err := r.q.Search(ctx, domain.TableSales, offset, limit, "erc721Address", map[string]interface{}{}, &res); err != nil {
		ctx.WithField("err", err).Error("q.Search failed")
		return nil, err
	}
	return res, nil
}
