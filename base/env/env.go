package env

import (
	"os"
)

const defaultAppName = "marketplace-api"

// PodName example: marketplace-api-6868d88fbd-bz8zv, empty outside kubernetes
func PodName() string {
	return os.Getenv("PODNAME")
}

// EnvName example: staging
func EnvName() string {
	return os.Getenv("ENV_NAME")
}

// AppName tags metrics of this process
func AppName() string {
	if name := os.Getenv("APP_NAME"); name != "" {
		return name
	}
	return defaultAppName
}
