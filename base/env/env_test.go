package env

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppName(t *testing.T) {
	old, ok := os.LookupEnv("APP_NAME")
	defer func() {
		if ok {
			os.Setenv("APP_NAME", old)
		} else {
			os.Unsetenv("APP_NAME")
		}
	}()

	os.Unsetenv("APP_NAME")
	assert.Equal(t, "marketplace-api", AppName())

	os.Setenv("APP_NAME", "marketplace-worker")
	assert.Equal(t, "marketplace-worker", AppName())
}
