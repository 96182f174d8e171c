package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"coauthor/article-service/config"
	"coauthor/article-service/internal/database"
	"coauthor/article-service/internal/route"
)

// newLogger 根据配置构建 zerolog 根日志器
func newLogger(cfg *config.LogConfig) zerolog.Logger {
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
	}

	var logger zerolog.Logger
	if cfg.Format == "console" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr})
	} else {
		logger = zerolog.New(os.Stderr)
	}
	return logger.Level(level).With().Timestamp().Logger()
}

func main() {
	// 1. 加载配置
	config.MustLoad("config.yaml")

	logger := newLogger(&config.Conf.Log)

	// 2. 初始化数据库
	db, err := database.New(config.Conf)
	if err != nil {
		logger.Fatal().Err(err).Msg("database init failed")
	}

	// 3. 初始化 redis（可选）
	rdb, err := database.NewRedis(config.Conf)
	if err != nil {
		// 缓存不可用只降级，不阻止启动
		logger.Warn().Err(err).Msg("redis init failed, running without cache")
		rdb = nil
	}

	// 4. 设置路由
	r := route.SetupRouter(config.Conf, db, rdb, logger)

	// 5. 启动服务
	addr := fmt.Sprintf("%s:%d", config.Conf.Server.Host, config.Conf.Server.Port)
	logger.Info().Str("addr", addr).Msg("server starting")
	if err := r.Run(addr); err != nil {
		logger.Fatal().Err(err).Msg("server exited")
	}
}
