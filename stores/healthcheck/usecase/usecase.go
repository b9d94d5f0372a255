package usecase

import (
	"errors"

	"github.com/x-xyz/marketplace/base/ctx"
	"github.com/x-xyz/marketplace/base/log"
	hcdomain "github.com/x-xyz/marketplace/domain/healthcheck"
)

type probe struct {
	component hcdomain.Component
	ping      func(ctx.Ctx) error
}

type impl struct {
	probes []probe
}

func New(repo hcdomain.HealthCheckRepo) hcdomain.HealthCheckUsecase {
	return &impl{
		probes: []probe{
			{hcdomain.ComponentMongo, repo.PingDB},
			{hcdomain.ComponentRedis, repo.PingCache},
		},
	}
}

func (im *impl) Check(c ctx.Ctx) (hcdomain.Report, error) {
	report := hcdomain.Report{}
	healthy := true
	for _, p := range im.probes {
		err := p.ping(c)
		switch {
		case err == nil:
			report[p.component] = hcdomain.StatusOk
		case errors.Is(err, hcdomain.ErrDisabled):
			report[p.component] = hcdomain.StatusDisabled
		default:
			healthy = false
			report[p.component] = err.Error()
			c.WithFields(log.Fields{
				"err":       err,
				"component": p.component,
			}).Warn("probe failed")
		}
	}
	if !healthy {
		return report, hcdomain.ErrUnhealthy
	}
	return report, nil
}
