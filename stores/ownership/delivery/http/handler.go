package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/settlement/base/ctx"
	"github.com/x-xyz/settlement/base/delivery"
	"github.com/x-xyz/settlement/domain"
	"github.com/x-xyz/settlement/domain/ownership"
	"github.com/x-xyz/settlement/middleware"
	authMiddleware "github.com/x-xyz/settlement/stores/auth/delivery/http/middleware"
)

type handler struct {
	ownership ownership.Usecase
}

func New(e *echo.Echo, ownershipUC ownership.Usecase, authMiddleware *authMiddleware.AuthMiddleware) {
	h := &handler{ownershipUC}

	g := e.Group("/ownership")

	g.GET("", h.get, middleware.CacheHttp(5*time.Second))

	g.POST("/propose", h.propose, authMiddleware.Auth())

	g.POST("/accept", h.accept, authMiddleware.Auth())

	g.POST("/renounce", h.renounce, authMiddleware.Auth())
}

func (h *handler) get(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	if res, err := h.ownership.Get(ctx); err == domain.ErrNotFound {
		return delivery.MakeJsonResp(c, http.StatusNotFound, err)
	} else if err != nil {
		ctx.WithField("err", err).Error("ownership.Get failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, res)
	}
}

func (h *handler) propose(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	caller := c.Get("address").(domain.Address)

	type params struct {
		Candidate domain.Address `json:"candidate" validate:"required"`
	}

	p := &params{}

	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Error("c.Bind failed")
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	event, err := h.ownership.Propose(ctx, caller, p.Candidate)
	switch err {
	case nil:
		return delivery.MakeJsonResp(c, http.StatusOK, event)
	case domain.ErrUnauthorized:
		return delivery.MakeJsonResp(c, http.StatusUnauthorized, err)
	case domain.ErrInvalidAddress:
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	default:
		ctx.WithField("err", err).Error("ownership.Propose failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
}

func (h *handler) accept(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	caller := c.Get("address").(domain.Address)

	event, err := h.ownership.Accept(ctx, caller)
	switch err {
	case nil:
		return delivery.MakeJsonResp(c, http.StatusOK, event)
	case domain.ErrUnauthorized:
		return delivery.MakeJsonResp(c, http.StatusUnauthorized, err)
	default:
		ctx.WithField("err", err).Error("ownership.Accept failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
}

func (h *handler) renounce(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	caller := c.Get("address").(domain.Address)

	event, err := h.ownership.Renounce(ctx, caller)
	switch err {
	case nil:
		return delivery.MakeJsonResp(c, http.StatusOK, event)
	case domain.ErrUnauthorized:
		return delivery.MakeJsonResp(c, http.StatusUnauthorized, err)
	default:
		ctx.WithField("err", err).Error("ownership.Renounce failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
}
