package config

import (
	"os"
	"sync"
	"time"
)

type StoreConfig struct {
	Driver        string // memory, redis, postgres, sqlite
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	TTL           time.Duration
	SQLitePath    string
}

var (
	storeConfig *StoreConfig
	storeOnce   sync.Once
)

func LoadStoreConfig() *StoreConfig {
	storeOnce.Do(func() {
		storeConfig = &StoreConfig{
			Driver:        envString("STORE_DRIVER", "memory"),
			RedisAddr:     envString("REDIS_ADDR", "localhost:6379"),
			RedisPassword: os.Getenv("REDIS_PASSWORD"),
			RedisDB:       envInt("REDIS_DB", 0),
			TTL:           envDuration("STORE_TTL", 0),
			SQLitePath:    envString("SQLITE_PATH", "lead-scorer.db"),
		}
	})
	return storeConfig
}
