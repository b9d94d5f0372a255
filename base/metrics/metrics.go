/*Package metrics wraps datadog-go to faciliate metric recording
Following are naming convention of metric:
- Internal process time: *.time
- External latency: *.latency
- Error: *.err
- Business counter: *.count
*/
package metrics

import (
	"strings"

	"github.com/x-xyz/marketplace/base/env"
)

// Ender provides interface for BumpTime
type Ender interface {
	End()
}

// Service provides interface for metrics
type Service interface {
	BumpAvg(key string, val float64, tags ...string)
	BumpSum(key string, val float64, tags ...string)
	BumpHistogram(key string, val float64, tags ...string)

	BumpTime(key string, tags ...string) Ender
}

// Option is functional parameter for metrics option
type Option func(*opt)

type opt struct {
	// default: true
	withPodName bool
}

// WithoutPodName drops the pod tag, useful for low cardinality dashboards
func WithoutPodName() Option {
	return func(o *opt) {
		o.withPodName = false
	}
}

// New creates a metric client with package name as prefix
func New(pkgName string, options ...Option) Service {
	o := opt{
		withPodName: true,
	}
	for _, option := range options {
		option(&o)
	}

	ddTags := []string{
		// using host removes all tags associated with host
		// ref: https://docs.datadoghq.com/developers/dogstatsd/data_types/#host-tag-key
		"host:",
		"env:" + env.EnvName(),
		"app:" + env.AppName(),
	}
	if o.withPodName {
		ddTags = append(ddTags, "pod:"+env.PodName())
	}

	return &Metrics{
		pkgName: pkgName,
		datadog: DDMetrics{
			ddTags: ddTags,
		},
	}
}

// Metrics prefixes every key with the package name and forwards to datadog
type Metrics struct {
	pkgName string
	datadog DDMetrics
}

func (mt *Metrics) key(key string) string {
	return mt.pkgName + `.` + key
}

// recoverPanic keeps a broken tag list from taking down the caller
func (mt *Metrics) recoverPanic(typ, key string, tags []string) {
	if err := recover(); err != nil {
		mt.datadog.BumpSum(typ+".panic", 1, 1, "tag", mt.key(key)+"#"+strings.Join(tags, "#"))
	}
}

// BumpAvg bumps the average for the given key.
func (mt *Metrics) BumpAvg(key string, val float64, tags ...string) {
	defer mt.recoverPanic("bumpavg", key, tags)
	mt.datadog.BumpAvg(mt.key(key), val, 1, tags...)
}

// BumpSum bumps the sum for the given key.
func (mt *Metrics) BumpSum(key string, val float64, tags ...string) {
	defer mt.recoverPanic("bumpsum", key, tags)
	mt.datadog.BumpSum(mt.key(key), val, 1, tags...)
}

// BumpHistogram bumps the histogram for the given key.
func (mt *Metrics) BumpHistogram(key string, val float64, tags ...string) {
	defer mt.recoverPanic("bumphistogram", key, tags)
	mt.datadog.BumpHistogram(mt.key(key), val, 1, tags...)
}

// BumpTime starts a timer, End() records the elapsed time:
//
//     defer s.BumpTime("my.function").End()
func (mt *Metrics) BumpTime(key string, tags ...string) (e Ender) {
	e = noopEnder{}
	defer mt.recoverPanic("bumptime", key, tags)
	return mt.datadog.BumpTime(mt.key(key), 1, tags...)
}

type noopEnder struct{}

func (noopEnder) End() {}
