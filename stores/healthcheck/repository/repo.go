package repository

import (
	"time"

	"github.com/x-xyz/marketplace/base/ctx"
	"github.com/x-xyz/marketplace/base/database/mongoclient"
	hcdomain "github.com/x-xyz/marketplace/domain/healthcheck"
	"github.com/x-xyz/marketplace/domain/keys"
	"github.com/x-xyz/marketplace/service/redis"
)

type impl struct {
	mgoClient  *mongoclient.Client
	redisCache redis.Service
}

// New creates the health check repo, redisCache may be nil when the deployment runs without redis
func New(
	mgoClient *mongoclient.Client,
	redisCache redis.Service,
) hcdomain.HealthCheckRepo {
	return &impl{
		mgoClient:  mgoClient,
		redisCache: redisCache,
	}
}

func (im *impl) PingDB(context ctx.Ctx) error {
	if err := im.mgoClient.Ping(context); err != nil {
		context.WithField("err", err).Error("ping mongo error")
		return err
	}
	return nil
}

func (im *impl) PingCache(context ctx.Ctx) error {
	if im.redisCache == nil {
		return hcdomain.ErrDisabled
	}
	ctx, cancel := ctx.WithTimeout(context, 2*time.Second)
	defer cancel()
	if err := im.redisCache.Set(ctx, keys.RedisKey(keys.PfxHealthCheck, "testset"), []byte("1"), 30*time.Second); err != nil {
		context.WithField("err", err).Error("test redis set failed")
		return err
	}
	return nil
}
