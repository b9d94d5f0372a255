package keys

import (
	"strings"
)

const (
	// PfxHealthCheck is used for prefixing health check redis key
	PfxHealthCheck = "healthcheck"
	// PfxGuard is used for prefixing the exchange lease key
	PfxGuard = "guard"
	// PfxTreasury is used for prefixing cached fee config
	PfxTreasury = "treasury"
)

// CustomKey is used to join the customized key by componets with specified delimiter
func CustomKey(delimiter string, components ...string) string {
	return strings.Join(components, delimiter)
}

// RedisKey is used to join the redis key by componets
func RedisKey(components ...string) string {
	return CustomKey(":", components...)
}

// GetPrefix extracts the prefix of a key, used as a low cardinality metric tag
func GetPrefix(key string) string {
	s := strings.Split(key, ":")
	if len(s) > 2 {
		return strings.Join(s[:2], ":")
	} else if len(s) > 1 {
		return s[0]
	}
	return ""
}
