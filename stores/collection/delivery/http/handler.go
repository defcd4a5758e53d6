package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/settlement/base/ctx"
	"github.com/x-xyz/settlement/base/delivery"
	"github.com/x-xyz/settlement/domain"
	"github.com/x-xyz/settlement/domain/collection"
	"github.com/x-xyz/settlement/middleware"
	authMiddleware "github.com/x-xyz/settlement/stores/auth/delivery/http/middleware"
)

type handler struct {
	collection collection.Usecase
}

func New(e *echo.Echo, collectionUC collection.Usecase, authMiddleware *authMiddleware.AuthMiddleware) {
	h := &handler{collectionUC}

	e.POST("/collections", h.register, authMiddleware.Auth())

	e.GET("/collections", h.getAll, middleware.CacheHttp(15*time.Second))

	e.PUT("/collection/:contract", h.update, authMiddleware.Auth(), middleware.IsValidAddress("contract"))

	e.GET("/collection/:contract", h.get, middleware.CacheHttp(15*time.Second), middleware.IsValidAddress("contract"))
}

func (h *handler) register(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	caller := c.Get("address").(domain.Address)

	p := &collection.RegisterPayload{}

	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Error("c.Bind failed")
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	event, err := h.collection.Register(ctx, caller, *p)
	switch err {
	case nil:
		return delivery.MakeJsonResp(c, http.StatusCreated, event)
	case domain.ErrUnauthorized:
		return delivery.MakeJsonResp(c, http.StatusUnauthorized, err)
	case domain.ErrCollectionAlreadyRegistered:
		return delivery.MakeJsonResp(c, http.StatusConflict, err)
	case domain.ErrInvalidAddress, domain.ErrInvalidPercentage, domain.ErrRoyaltyTooHigh:
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	default:
		ctx.WithField("err", err).Error("collection.Register failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
}

func (h *handler) update(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	caller := c.Get("address").(domain.Address)

	p := &collection.UpdatePayload{}

	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Error("c.Bind failed")
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	p.Erc721Address = domain.Address(c.Param("contract"))

	event, err := h.collection.Update(ctx, caller, *p)
	switch err {
	case nil:
		return delivery.MakeJsonResp(c, http.StatusOK, event)
	case domain.ErrUnauthorized:
		return delivery.MakeJsonResp(c, http.StatusUnauthorized, err)
	case domain.ErrCollectionNotFound:
		return delivery.MakeJsonResp(c, http.StatusNotFound, err)
	case domain.ErrInvalidAddress, domain.ErrInvalidPercentage, domain.ErrRoyaltyTooHigh:
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	default:
		ctx.WithField("err", err).Error("collection.Update failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
}

func (h *handler) get(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	address := domain.Address(c.Param("contract"))

	if res, err := h.collection.Get(ctx, address); err == domain.ErrCollectionNotFound {
		return delivery.MakeJsonResp(c, http.StatusNotFound, err)
	} else if err != nil {
		ctx.WithField("err", err).Error("collection.Get failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, res)
	}
}

func (h *handler) getAll(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		Offset int `query:"offset"`
		Limit  int `query:"limit"`
	}

	p := &params{Limit: 30}

	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Error("c.Bind failed")
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if res, err := h.collection.FindAll(ctx, p.Offset, p.Limit); err != nil {
		ctx.WithField("err", err).Error("collection.FindAll failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, res)
	}
}
