package database

import (
	"time"

	"coauthor/article-service/config"
	"coauthor/article-service/internal/model"

	"gorm.io/gorm"
)

// New 根据配置建立数据库连接并完成建表
// 连接句柄由调用方持有并向下传递，不再保存为包级单例
func New(cfg *config.AppConfig) (*gorm.DB, error) {
	databaseConf := cfg.Database

	logLevel := databaseConf.LogLevel
	if logLevel == "" {
		logLevel = "warn"
	}

	db, err := InitPostgres(&PostgresConfig{
		ServiceName:     "article-service",
		Username:        databaseConf.Username,
		Password:        databaseConf.Password,
		Host:            databaseConf.Host,
		Port:            databaseConf.Port,
		Database:        databaseConf.Database,
		SSLMode:         databaseConf.SSLMode,
		LogLevel:        logLevel,
		MaxIdleConns:    databaseConf.MaxIdleConns,
		MaxOpenConns:    databaseConf.MaxOpenConns,
		ConnMaxLifetime: time.Duration(databaseConf.MaxLifetime) * time.Second,
	})
	if err != nil {
		return nil, err
	}

	// 初始化数据库表
	if err := model.InitTable(db); err != nil {
		return nil, err
	}

	return db, nil
}

// NewRedis 建立 Redis 连接；未启用时返回 nil，调用方需容忍空客户端
func NewRedis(cfg *config.AppConfig) (*RedisClient, error) {
	if !cfg.Redis.Enabled {
		return nil, nil
	}
	return InitRedis(&RedisConfig{
		ServiceName: "article-service",
		Host:        cfg.Redis.Host,
		Port:        cfg.Redis.Port,
		Password:    cfg.Redis.Password,
		DB:          cfg.Redis.DB,
		PoolSize:    cfg.Redis.PoolSize,
	})
}
