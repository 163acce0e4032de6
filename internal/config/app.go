package config

import (
	"log"
	"os"
	"sync"
)

type AppConfig struct {
	Name    string
	Env     string
	Port    string
	BaseURL string
}

var (
	appConfig *AppConfig
	appOnce   sync.Once
)

func LoadAppConfig() *AppConfig {
	appOnce.Do(func() {
		env := os.Getenv("APP_ENV")
		if env == "" {
			env = "development"
			log.Printf("Warning: APP_ENV not set, defaulting to %s", env)
		}
		appConfig = &AppConfig{
			Name:    envString("APP_NAME", "lead-scorer"),
			Env:     env,
			Port:    normalizePort(os.Getenv("APP_PORT")),
			BaseURL: os.Getenv("APP_URL"),
		}
	})
	return appConfig
}

func (c *AppConfig) IsProduction() bool {
	return c.Env == "production"
}

// normalizePort accepts "3000" or ":3000" and defaults to :3000.
func normalizePort(port string) string {
	if port == "" {
		return ":3000"
	}
	if port[0] != ':' {
		return ":" + port
	}
	return port
}
