package healthcheck

import (
	"errors"

	"github.com/x-xyz/marketplace/base/ctx"
)

var (
	// ErrDisabled is returned by a probe whose component is not configured
	ErrDisabled  = errors.New("disabled")
	ErrUnhealthy = errors.New("unhealthy")
)

type Component string

const (
	ComponentMongo Component = "mongo"
	ComponentRedis Component = "redis"
)

const (
	StatusOk       = "ok"
	StatusDisabled = "disabled"
)

// Report holds ok, disabled or the probe error of every component
type Report map[Component]string

type HealthCheckUsecase interface {
	// Check probes every component, err is ErrUnhealthy when any probe failed
	Check(c ctx.Ctx) (Report, error)
}

type HealthCheckRepo interface {
	PingDB(c ctx.Ctx) error
	// PingCache returns ErrDisabled when the deployment runs without redis
	PingCache(c ctx.Ctx) error
}
