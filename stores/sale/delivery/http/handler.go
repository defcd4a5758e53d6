package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/settlement/base/ctx"
	"github.com/x-xyz/settlement/base/delivery"
	"github.com/x-xyz/settlement/domain"
	"github.com/x-xyz/settlement/domain/sale"
	"github.com/x-xyz/settlement/middleware"
	authMiddleware "github.com/x-xyz/settlement/stores/auth/delivery/http/middleware"
)

type handler struct {
	sale sale.Usecase
}

func New(e *echo.Echo, saleUC sale.Usecase, authMiddleware *authMiddleware.AuthMiddleware) {
	h := &handler{saleUC}

	e.GET("/sales", h.getAll, middleware.CacheHttp(15*time.Second))

	g := e.Group("/collection/:contract/sale/:tokenId", middleware.IsValidAddress("contract"))

	g.GET("", h.get, middleware.CacheHttp(15*time.Second))

	g.PUT("", h.upsert, authMiddleware.Auth())

	g.DELETE("", h.remove, authMiddleware.Auth())

	g.DELETE("/admin", h.adminRemove, authMiddleware.Auth())

	g.POST("/buy", h.buy, authMiddleware.Auth())
}

func bindSaleId(c echo.Context) sale.SaleId {
	return sale.SaleId{
		Erc721Address: domain.Address(c.Param("contract")),
		TokenId:       domain.TokenId(c.Param("tokenId")),
	}
}

func (h *handler) upsert(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	caller := c.Get("address").(domain.Address)

	id := bindSaleId(c)

	p := &sale.UpsertPayload{}

	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Error("c.Bind failed")
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	p.Erc721Address = id.Erc721Address
	p.TokenId = id.TokenId

	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	event, err := h.sale.Upsert(ctx, caller, *p)
	switch err {
	case nil:
		return delivery.MakeJsonResp(c, http.StatusOK, event)
	case domain.ErrUnauthorized:
		return delivery.MakeJsonResp(c, http.StatusUnauthorized, err)
	case domain.ErrNotApproved:
		return delivery.MakeJsonResp(c, http.StatusMethodNotAllowed, err)
	case domain.ErrCollectionPaused, domain.ErrDenomNotSupported, domain.ErrBadParamInput, domain.ErrInvalidAddress, domain.ErrInvalidNumberFormat:
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	default:
		ctx.WithField("err", err).Error("sale.Upsert failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
}

func (h *handler) remove(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	caller := c.Get("address").(domain.Address)

	event, err := h.sale.Remove(ctx, caller, bindSaleId(c))
	switch err {
	case nil:
		return delivery.MakeJsonResp(c, http.StatusOK, event)
	case domain.ErrUnauthorized:
		return delivery.MakeJsonResp(c, http.StatusUnauthorized, err)
	default:
		ctx.WithField("err", err).Error("sale.Remove failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
}

func (h *handler) adminRemove(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	caller := c.Get("address").(domain.Address)

	event, err := h.sale.AdminRemove(ctx, caller, bindSaleId(c))
	switch err {
	case nil:
		return delivery.MakeJsonResp(c, http.StatusOK, event)
	case domain.ErrUnauthorized:
		return delivery.MakeJsonResp(c, http.StatusUnauthorized, err)
	case domain.ErrSaleDoesNotExist:
		return delivery.MakeJsonResp(c, http.StatusNotFound, err)
	default:
		ctx.WithField("err", err).Error("sale.AdminRemove failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
}

func (h *handler) buy(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	caller := c.Get("address").(domain.Address)

	type params struct {
		Funds []domain.Coin `json:"funds" validate:"required"`
	}

	p := &params{}

	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Error("c.Bind failed")
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	res, err := h.sale.Buy(ctx, caller, bindSaleId(c), p.Funds)
	switch err {
	case nil:
		return delivery.MakeJsonResp(c, http.StatusOK, res)
	case domain.ErrSaleDoesNotExist:
		return delivery.MakeJsonResp(c, http.StatusNotFound, err)
	case domain.ErrInsufficientFunds, domain.ErrCollectionPaused, domain.ErrRoyaltyTooHigh, domain.ErrInvalidNumberFormat:
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	default:
		ctx.WithField("err", err).Error("sale.Buy failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
}

func (h *handler) get(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	if res, err := h.sale.Get(ctx, bindSaleId(c)); err == domain.ErrSaleDoesNotExist {
		return delivery.MakeJsonResp(c, http.StatusNotFound, err)
	} else if err != nil {
		ctx.WithField("err", err).Error("sale.Get failed")
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

	if res, err := h.sale.FindAll(ctx, p.Offset, p.Limit); err != nil {
		ctx.WithField("err", err).Error("sale.FindAll failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, res)
	}
}
