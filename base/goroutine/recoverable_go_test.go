package goroutine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecoverableGo(t *testing.T) {
	started, ended := false, false
	ch := RecoverableGo(func() {}, WithBeforeStart(func() { started = true }), WithAfterEnded(func() { ended = true }))
	_, ok := <-ch
	assert.False(t, ok)
	assert.True(t, started)
	assert.True(t, ended)
}

func TestRecoverableGoPanic(t *testing.T) {
	var recovered interface{}
	ch := RecoverableGo(func() {
		panic("sink exploded")
	}, WithAfterRecovered(func(p interface{}, stack []byte) {
		recovered = p
	}))
	evt := <-ch
	if assert.NotNil(t, evt) {
		assert.Equal(t, "sink exploded", evt.Panic)
		assert.NotEmpty(t, evt.Stack)
	}
	assert.Equal(t, "sink exploded", recovered)
}
