package keys

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRedisKey(t *testing.T) {
	assert.Equal(t, "guard:exchange", RedisKey(PfxGuard, "exchange"))
	assert.Equal(t, "a", RedisKey("a"))
}

func TestGetPrefix(t *testing.T) {
	cases := []struct {
		key    string
		prefix string
	}{
		{"", ""},
		{"plain", ""},
		{"guard:exchange", "guard"},
		{"treasury:fee:config", "treasury:fee"},
		{"a:b:c:d", "a:b"},
	}
	for _, c := range cases {
		assert.Equal(t, c.prefix, GetPrefix(c.key), c.key)
	}
}
