package repository

import (
	bCtx "github.com/x-xyz/settlement/base/ctx"
	"github.com/x-xyz/settlement/domain"
	"github.com/x-xyz/settlement/service/query"
)

type eventMongoRepo struct {
	q query.Mongo
}

func NewEventRepo(q query.Mongo) domain.EventRepo {
	return &eventMongoRepo{
		q: q,
	}
}

func (r *eventMongoRepo) Create(ctx bCtx.Ctx, event *domain.Event) error {
	if err := r.q.Insert(ctx, domain.TableEvents, event); err != nil {
		ctx.WithField("err", err).Error("q.Insert failed")
		return err
	}
	return nil
}
