package main

import (
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/x-xyz/marketplace/base/ctx"
	"github.com/x-xyz/marketplace/base/database/mongoclient"
	"github.com/x-xyz/marketplace/base/database/redisclient"
	"github.com/x-xyz/marketplace/base/guard"
	"github.com/x-xyz/marketplace/base/log"
	"github.com/x-xyz/marketplace/base/metrics"
	bValidator "github.com/x-xyz/marketplace/base/validator"
	"github.com/x-xyz/marketplace/domain"
	"github.com/x-xyz/marketplace/domain/event"
	"github.com/x-xyz/marketplace/domain/keys"
	"github.com/x-xyz/marketplace/domain/treasury"
	mmiddleware "github.com/x-xyz/marketplace/middleware"
	"github.com/x-xyz/marketplace/service/cache"
	"github.com/x-xyz/marketplace/service/cache/provider"
	"github.com/x-xyz/marketplace/service/cache/provider/primitive"
	redisProvider "github.com/x-xyz/marketplace/service/cache/provider/redis"
	"github.com/x-xyz/marketplace/service/discord"
	"github.com/x-xyz/marketplace/service/query"
	"github.com/x-xyz/marketplace/service/redis"
	asset_delivery "github.com/x-xyz/marketplace/stores/asset/delivery/http"
	asset_repository "github.com/x-xyz/marketplace/stores/asset/repository"
	asset_usecase "github.com/x-xyz/marketplace/stores/asset/usecase"
	auth_delivery "github.com/x-xyz/marketplace/stores/auth/delivery/http"
	auth_middleware "github.com/x-xyz/marketplace/stores/auth/delivery/http/middleware"
	auth_usecase "github.com/x-xyz/marketplace/stores/auth/usecase"
	event_repository "github.com/x-xyz/marketplace/stores/event/repository"
	event_usecase "github.com/x-xyz/marketplace/stores/event/usecase"
	hc_delivery "github.com/x-xyz/marketplace/stores/healthcheck/delivery/http"
	hc_repo "github.com/x-xyz/marketplace/stores/healthcheck/repository"
	hc_usecase "github.com/x-xyz/marketplace/stores/healthcheck/usecase"
	listing_delivery "github.com/x-xyz/marketplace/stores/listing/delivery/http"
	listing_repository "github.com/x-xyz/marketplace/stores/listing/repository"
	listing_usecase "github.com/x-xyz/marketplace/stores/listing/usecase"
	payment_delivery "github.com/x-xyz/marketplace/stores/payment/delivery/http"
	payment_repository "github.com/x-xyz/marketplace/stores/payment/repository"
	payment_usecase "github.com/x-xyz/marketplace/stores/payment/usecase"
	treasury_delivery "github.com/x-xyz/marketplace/stores/treasury/delivery/http"
	treasury_repository "github.com/x-xyz/marketplace/stores/treasury/repository"
	treasury_usecase "github.com/x-xyz/marketplace/stores/treasury/usecase"

	_ "github.com/x-xyz/marketplace/app/api/docs"
)

func init() {
	pflag.String("config", "infra/configs/config.yaml", "path of the yaml config")
	pflag.Parse()
	if err := viper.BindPFlags(pflag.CommandLine); err != nil {
		panic(err)
	}

	viper.SetConfigType("yaml")
	viper.SetConfigFile(viper.GetString("config"))
	viper.SetEnvPrefix("marketplace")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	viper.SetDefault("server.address", ":8080")
	viper.SetDefault("marketplace.defaultFeeRateBps", treasury.DefaultFeeRateBps)
	viper.SetDefault("guard.lease", 30*time.Second)
	viper.SetDefault("feeCache.ttl", time.Minute)
	viper.SetDefault("feeCache.sizeMB", 1)
	if err := viper.ReadInConfig(); err != nil {
		panic(err)
	}

	log.Setup(viper.GetBool("debug"))
	if viper.GetBool(`debug`) {
		log.Log().Info("Service RUN on DEBUG mode")
	}
}

//	@title			X Marketplace Exchange API
//	@version		1.0
//	@description	Fixed price listings settled through the exchange escrow.

// main
//
//	@securityDefinitions.apikey	ApiKeyAuth
//	@in							header
//	@name						Authorization
//	@description				retrive token from #/auth/post_auth_sign and apply with `bearer {token}`
func main() {
	defer func() { _ = log.Sync() }()

	// init echo
	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{}))
	e.Use(middleware.RequestID())
	middL := mmiddleware.InitMiddleware()
	e.Use(middL.ResponseLogger())
	e.Use(middL.AddContext())
	e.Use(middleware.CORS())
	if rpm := viper.GetInt("server.rateLimitRpm"); rpm > 0 {
		e.Use(middL.RateLimit(rpm))
	}
	e.Validator = bValidator.NewCustomValidator(validator.New())

	context := ctx.Background()

	owner := domain.Address(viper.GetString("marketplace.owner")).ToLower()
	exchange := domain.Address(viper.GetString("marketplace.exchange")).ToLower()
	if !bValidator.IsValidAddress(string(owner)) || !bValidator.IsValidAddress(string(exchange)) {
		context.WithFields(log.Fields{"owner": owner, "exchange": exchange}).Panic("invalid marketplace addresses")
	}

	// init mongo client
	context.Info("init mongo")
	mongoClient := mongoclient.MustConnectMongoClient(mongoclient.Config{
		URI:                viper.GetString("mongo.uri"),
		AuthDBName:         viper.GetString("mongo.authDBName"),
		DBName:             viper.GetString("mongo.dbName"),
		SSL:                viper.GetBool("mongo.enableSSL"),
		SetSafe:            true,
		PoolSizeMultiplier: viper.GetFloat64("mongo.poolMultiplier"),
	})
	q := query.New(mongoClient)

	if viper.GetBool("mongo.checkIndex") {
		context.Info("ensure indexes")
		for name, ensure := range map[string]func(ctx.Ctx, query.Mongo) error{
			"listing": listing_repository.EnsureIndexes,
			"asset":   asset_repository.EnsureIndexes,
			"payment": payment_repository.EnsureIndexes,
			"event":   event_repository.EnsureIndexes,
		} {
			if err := ensure(context, q); err != nil {
				context.WithFields(log.Fields{"err": err, "repo": name}).Panic("EnsureIndexes failed")
			}
		}
	}

	// redis is optional, a single instance deployment guards in process
	var redisCache redis.Service
	if viper.GetBool("redis.enabled") {
		context.Info("init redis")
		redisName := viper.GetString("redis.name")
		redisPool := redisclient.MustConnectRedis(viper.GetString("redis.uri"), viper.GetString("redis.password"), redisclient.RedisParam{
			PoolMultiplier: viper.GetFloat64("redis.poolMultiplier"),
			Retry:          true,
		})
		redisCache = redis.New(redisName, metrics.New(redisName), &redis.Pools{
			Src: redisPool,
		})
	}

	var exchangeGuard guard.Guard
	var feeCacheProvider provider.Provider
	if redisCache != nil {
		exchangeGuard = guard.NewRedis(guard.RedisConfig{
			Name:  "exchange",
			Redis: redisCache,
			Lease: viper.GetDuration("guard.lease"),
		})
		feeCacheProvider = redisProvider.NewRedis(redisCache)
	} else {
		exchangeGuard = guard.NewLocal("exchange")
		feeCacheProvider = primitive.NewPrimitive("feeConfig", viper.GetInt("feeCache.sizeMB"))
	}
	feeCache := cache.New(cache.ServiceConfig{
		Ttl:   viper.GetDuration("feeCache.ttl"),
		Pfx:   keys.PfxTreasury,
		Cache: feeCacheProvider,
	})

	// init repo
	listingRepo := listing_repository.NewListingRepo(q)
	sellerIndexRepo := listing_repository.NewSellerIndexRepo(q)
	assetLedger := asset_repository.NewLedger(q)
	paymentLedger := payment_repository.NewLedger(q, exchange)
	treasuryRepo := treasury_repository.New(q)
	eventRepo := event_repository.New(q)
	hcRepo := hc_repo.New(mongoClient, redisCache)

	if err := treasuryRepo.Init(context, viper.GetUint64("marketplace.defaultFeeRateBps")); err != nil {
		context.WithField("err", err).Panic("treasuryRepo.Init failed")
	}

	// init event sinks
	sinks := []event.Sink{event_usecase.NewLogSink()}
	if botKey := viper.GetString("discord.botKey"); botKey != "" {
		notifier, err := discord.NewSaleNotifier(discord.Config{
			BotKey:        botKey,
			ChannelId:     viper.GetString("discord.channelId"),
			PriceDecimals: viper.GetInt32("discord.priceDecimals"),
			Symbol:        viper.GetString("discord.symbol"),
			AssetUrl:      viper.GetString("discord.assetUrl"),
		})
		if err != nil {
			context.WithField("err", err).Panic("discord.NewSaleNotifier failed")
		}
		sinks = append(sinks, notifier)
	}

	// init usecase
	hc := hc_usecase.New(hcRepo)
	eventUC := event_usecase.New(eventRepo, sinks...)
	treasuryUC := treasury_usecase.New(&treasury_usecase.TreasuryUseCaseCfg{
		Owner:      owner,
		Repo:       treasuryRepo,
		Payment:    paymentLedger,
		Event:      eventUC,
		Guard:      exchangeGuard,
		Transactor: q,
		Cache:      feeCache,
	})
	listingUC := listing_usecase.New(&listing_usecase.ListingUseCaseCfg{
		Exchange:        exchange,
		ListingRepo:     listingRepo,
		SellerIndexRepo: sellerIndexRepo,
		Registry:        assetLedger,
		Payment:         paymentLedger,
		Treasury:        treasuryUC,
		Event:           eventUC,
		Guard:           exchangeGuard,
		Transactor:      q,
	})
	assetUC := asset_usecase.New(&asset_usecase.AssetUseCaseCfg{
		Owner:      owner,
		Exchange:   exchange,
		Ledger:     assetLedger,
		Transactor: q,
	})
	paymentUC := payment_usecase.New(owner, paymentLedger)
	auth := auth_usecase.New(viper.GetString("auth.jwtSecret"), viper.GetString("auth.signatureMsg"))
	authMw := auth_middleware.New(auth)

	// init delivery
	hc_delivery.New(e, hc)
	auth_delivery.New(e, auth)
	listing_delivery.New(e, listingUC, eventUC, authMw)
	treasury_delivery.New(e, treasuryUC, authMw)
	payment_delivery.New(e, paymentUC, authMw)
	asset_delivery.New(e, assetUC, authMw)

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	go func() {
		if err := e.Start(viper.GetString("server.address")); err != nil && err != http.ErrServerClosed {
			log.Log().WithField("err", err).Error("shutting down the server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with a timeout of 10 seconds.
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
