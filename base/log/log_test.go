package log

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithFieldDoesNotShareBacking(t *testing.T) {
	base := Log().WithField("a", 1)
	l1 := base.WithField("b", 2)
	l2 := base.WithField("c", 3)

	assert.Equal(t, []interface{}{"a", 1}, base.fields)
	assert.Equal(t, []interface{}{"a", 1, "b", 2}, l1.fields)
	assert.Equal(t, []interface{}{"a", 1, "c", 3}, l2.fields)
}

func TestWithFields(t *testing.T) {
	l := Log().WithFields(Fields{"listingId": uint64(1)})
	assert.Equal(t, []interface{}{"listingId", uint64(1)}, l.fields)
}
