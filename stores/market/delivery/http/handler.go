package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/settlement/base/ctx"
	"github.com/x-xyz/settlement/base/delivery"
	"github.com/x-xyz/settlement/domain"
	"github.com/x-xyz/settlement/domain/market"
	"github.com/x-xyz/settlement/middleware"
	authMiddleware "github.com/x-xyz/settlement/stores/auth/delivery/http/middleware"
)

type handler struct {
	market market.Usecase
}

func New(e *echo.Echo, marketUC market.Usecase, authMiddleware *authMiddleware.AuthMiddleware) {
	h := &handler{marketUC}

	e.GET("/market/config", h.get, middleware.CacheHttp(15*time.Second))
	e.GET("/market/taker-fee", h.getTakerFee, middleware.CacheHttp(15*time.Second))

	e.PUT("/market/taker-fee", h.updateTakerFee, authMiddleware.Auth())
}

func (h *handler) getTakerFee(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	fee, err := h.market.GetTakerFee(ctx)
	if err != nil {
		ctx.WithField("err", err).Error("market.GetTakerFee failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, map[string]uint64{
		"takerFeePercent": fee,
	})
}

func (h *handler) get(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	if res, err := h.market.Get(ctx); err != nil {
		ctx.WithField("err", err).Error("market.Get failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, res)
	}
}

func (h *handler) updateTakerFee(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	caller := c.Get("address").(domain.Address)

	type params struct {
		TakerFeePercent *uint64 `json:"takerFeePercent" validate:"required"`
	}

	p := &params{}

	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Error("c.Bind failed")
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	event, err := h.market.UpdateTakerFee(ctx, caller, *p.TakerFeePercent)
	switch err {
	case nil:
		return delivery.MakeJsonResp(c, http.StatusOK, event)
	case domain.ErrUnauthorized:
		return delivery.MakeJsonResp(c, http.StatusUnauthorized, err)
	case domain.ErrInvalidPercentage:
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	default:
		ctx.WithField("err", err).Error("market.UpdateTakerFee failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
}
