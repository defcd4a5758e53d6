package main

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/viper"

	"github.com/go-playground/validator/v10"
	"github.com/x-xyz/settlement/base/ctx"
	"github.com/x-xyz/settlement/base/database/mongoclient"
	"github.com/x-xyz/settlement/base/database/redisclient"
	"github.com/x-xyz/settlement/base/log"
	"github.com/x-xyz/settlement/base/metrics"
	bValidator "github.com/x-xyz/settlement/base/validator"
	"github.com/x-xyz/settlement/domain"
	"github.com/x-xyz/settlement/domain/market"
	mmiddleware "github.com/x-xyz/settlement/middleware"
	"github.com/x-xyz/settlement/service/chain"
	"github.com/x-xyz/settlement/service/query"
	"github.com/x-xyz/settlement/service/redis"
	registry_service "github.com/x-xyz/settlement/service/registry"
	auth_delivery "github.com/x-xyz/settlement/stores/auth/delivery/http"
	auth_middleware "github.com/x-xyz/settlement/stores/auth/delivery/http/middleware"
	auth_usecase "github.com/x-xyz/settlement/stores/auth/usecase"
	collection_delivery "github.com/x-xyz/settlement/stores/collection/delivery/http"
	collection_repository "github.com/x-xyz/settlement/stores/collection/repository"
	collection_usecase "github.com/x-xyz/settlement/stores/collection/usecase"
	event_repository "github.com/x-xyz/settlement/stores/event/repository"
	hc_delivery "github.com/x-xyz/settlement/stores/healthcheck/delivery/http"
	hc_repo "github.com/x-xyz/settlement/stores/healthcheck/repository"
	hc_usecase "github.com/x-xyz/settlement/stores/healthcheck/usecase"
	market_delivery "github.com/x-xyz/settlement/stores/market/delivery/http"
	market_repository "github.com/x-xyz/settlement/stores/market/repository"
	market_usecase "github.com/x-xyz/settlement/stores/market/usecase"
	ownership_delivery "github.com/x-xyz/settlement/stores/ownership/delivery/http"
	ownership_repository "github.com/x-xyz/settlement/stores/ownership/repository"
	ownership_usecase "github.com/x-xyz/settlement/stores/ownership/usecase"
	sale_delivery "github.com/x-xyz/settlement/stores/sale/delivery/http"
	sale_repository "github.com/x-xyz/settlement/stores/sale/repository"
	sale_usecase "github.com/x-xyz/settlement/stores/sale/usecase"
)

func init() {
	viper.SetConfigType("yaml")
	viper.SetConfigFile(`infra/configs/config.yaml`)
	err := viper.ReadInConfig()
	if err != nil {
		panic(err)
	}

	if viper.GetBool(`debug`) {
		log.Log().Info("Service RUN on DEBUG mode")
	}
}

func main() {
	// init echo
	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{}))
	e.Use(middleware.RequestID())
	middL := mmiddleware.InitMiddleware()
	e.Use(middL.ResponseLogger())
	e.Use(middL.AddContext())
	e.Use(middleware.CORS())
	e.Validator = bValidator.NewCustomValidator(validator.New())

	context := ctx.Background()

	// init mongo client
	context.Info("init mongo")
	uri := viper.GetString("mongo.uri")
	authDBName := viper.GetString("mongo.authDBName")
	dbName := viper.GetString("mongo.dbName")
	enableSSL := viper.GetBool("mongo.enableSSL")
	checkIndex := viper.GetBool("mongo.checkIndex")
	mongoClient := mongoclient.MustConnectMongoClient(uri, authDBName, dbName, enableSSL, true, 2)
	q := query.New(mongoClient, checkIndex)

	// init Redis service
	context.Info("init redis cache")
	redisCacheName := viper.GetString("redis_cache.name")
	redisCacheURI := viper.GetString("redis_cache.uri")
	redisCachePwd := viper.GetString("redis_cache.password")
	redisCachePoolMultiplier := viper.GetFloat64("redis_cache.poolMultiplier")
	redisCachePool := redisclient.MustConnectRedis(redisCacheURI, redisCachePwd, redisclient.RedisParam{
		PoolMultiplier: redisCachePoolMultiplier,
	})
	redisCache := redis.New(redisCacheName, metrics.New(redisCacheName), redisCachePool)

	mmiddleware.SetupCache(redisCache)

	// init chain service
	networks := viper.Sub("networks")
	keys := networks.AllSettings()
	rpcs := make(map[int32]string)
	for k := range keys {
		chainId := networks.GetInt32(fmt.Sprintf("%s.chainId", k))
		rpcUrl := networks.GetString(fmt.Sprintf("%s.rpcUrl", k))
		rpcs[chainId] = rpcUrl
	}
	chainService, err := chain.NewClient(context, &chain.ClientCfg{
		RpcUrls: rpcs,
	})
	if err != nil {
		context.WithField("err", err).Warn("chainService started with error")
	}
	chainId := viper.GetInt32("marketplace.chainId")
	registryClient := registry_service.NewClient(chainId, chainService)
	operator := domain.Address(viper.GetString("marketplace.operator")).ToLower()

	// construct repository, usecase and delivery
	hcRepo := hc_repo.New(mongoClient, redisCache)
	eventRepo := event_repository.NewEventRepo(q)
	collectionRepo := collection_repository.NewCollectionRepo(q)
	saleRepo := sale_repository.NewSaleRepo(q)
	marketRepo := market_repository.NewMarketRepo(q)
	ownershipRepo := ownership_repository.NewOwnershipRepo(q)

	hc := hc_usecase.New(hcRepo)
	ownership := ownership_usecase.NewOwnershipUsecase(ownershipRepo, eventRepo)
	marketUC := market_usecase.NewMarketUsecase(marketRepo, ownership, eventRepo)
	collection := collection_usecase.NewCollectionUsecase(collectionRepo, marketUC, ownership, eventRepo)
	sale := sale_usecase.NewSaleUsecase(saleRepo, collectionRepo, marketUC, ownership, registryClient, eventRepo, q, operator)
	auth := auth_usecase.New(viper.GetString("auth.jwtSecret"))

	// seed the singleton documents on first boot
	owner := domain.Address(viper.GetString("marketplace.owner"))
	if err := ownership.Bootstrap(context, owner); err != nil {
		context.WithField("err", err).Panic("bootstrap ownership failed")
	}
	if err := marketUC.Bootstrap(context, market.Config{
		TakerFeePercent: viper.GetUint64("marketplace.takerFeePercent"),
		TakerAddress:    domain.Address(viper.GetString("marketplace.takerAddress")),
		AcceptedDenom:   viper.GetString("marketplace.acceptedDenom"),
	}); err != nil {
		context.WithField("err", err).Panic("bootstrap market config failed")
	}

	authMiddleware := auth_middleware.New(auth)

	hc_delivery.New(e, hc)
	auth_delivery.New(e, auth)
	collection_delivery.New(e, collection, authMiddleware)
	sale_delivery.New(e, sale, authMiddleware)
	market_delivery.New(e, marketUC, authMiddleware)
	ownership_delivery.New(e, ownership, authMiddleware)

	e.GET("/check", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]interface{}{
			"address": c.Get("address").(domain.Address),
		})
	}, authMiddleware.Auth())

	go func() {
		if err := e.Start(viper.GetString("server.address")); err != nil && err != http.ErrServerClosed {
			log.Log().WithField("err", err).Error("shutting down the server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with a timeout of 10 seconds.
	// Use a buffered channel to avoid missing signals as recommended for signal.Notify
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	sig := <-quit
	log.Log().WithField("signal", sig).Info("received signal")
	ctx, cancel := ctx.WithTimeout(context, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Log().WithField("err", err).Error("shutting down the server")
	} else {
		log.Log().Info("shutdown server successfully")
	}
}
