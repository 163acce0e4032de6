package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fadilmartias/lead-scorer/internal/config"
	"github.com/fadilmartias/lead-scorer/internal/model"
	"github.com/redis/go-redis/v9"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Open builds the session store selected by STORE_DRIVER.
func Open(ctx context.Context, storeCfg *config.StoreConfig) (SessionRepository, error) {
	driver := strings.ToLower(storeCfg.Driver)
	zap.L().Info("opening session store", zap.String("driver", driver))

	switch driver {
	case "memory", "":
		return NewMemorySessionRepository(), nil
	case "redis":
		rdb := redis.NewClient(&redis.Options{
			Addr:        storeCfg.RedisAddr,
			Password:    storeCfg.RedisPassword,
			DB:          storeCfg.RedisDB,
			DialTimeout: 5 * time.Second,
		})
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := rdb.Ping(pingCtx).Err(); err != nil {
			_ = rdb.Close()
			return nil, eris.Wrap(err, "redis ping")
		}
		return NewRedisSessionRepository(rdb, storeCfg.TTL), nil
	case "postgres":
		db, err := ConnectDB(postgres.Open(config.LoadDBConfig().DSN()))
		if err != nil {
			return nil, err
		}
		return NewGormSessionRepository(db), nil
	case "sqlite":
		db, err := ConnectDB(sqlite.Open(storeCfg.SQLitePath))
		if err != nil {
			return nil, err
		}
		return NewGormSessionRepository(db), nil
	default:
		return nil, fmt.Errorf("unknown STORE_DRIVER %q", storeCfg.Driver)
	}
}

// ConnectDB opens a gorm connection, sizes its pool and migrates session_states.
func ConnectDB(dialector gorm.Dialector) (*gorm.DB, error) {
	appConfig := config.LoadAppConfig()

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, eris.Wrap(err, "could not connect to database")
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, eris.Wrap(err, "could not get database instance")
	}
	if appConfig.IsProduction() {
		sqlDB.SetMaxIdleConns(20)
		sqlDB.SetMaxOpenConns(200)
		sqlDB.SetConnMaxLifetime(time.Hour)
	} else {
		sqlDB.SetMaxIdleConns(5)
		sqlDB.SetMaxOpenConns(10)
		sqlDB.SetConnMaxLifetime(30 * time.Minute)
	}

	if err := db.AutoMigrate(&model.SessionState{}); err != nil {
		return nil, eris.Wrap(err, "migration failed")
	}
	return db, nil
}
