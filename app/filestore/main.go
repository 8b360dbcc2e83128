package main

import (
	"eduzone-backend/app/filestore/handlers"
	"eduzone-backend/app/filestore/inits"
	"eduzone-backend/app/filestore/store"
	"fmt"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

func main() {
	// 初始化配置
	cfg, err := inits.Config()
	if err != nil {
		log.Fatal(fmt.Errorf("error loading config: %w", err))
	}

	// 初始化日志
	l, err := inits.Logger(!cfg.IsProd)
	if err != nil {
		log.Fatal(fmt.Errorf("error initializing logger: %w", err))
	}

	// 切换日志系统
	l.Debug("logger initialized")

	// 初始化文件存储，不存在时创建空数据文件
	st, err := store.NewJSONFile(cfg.DataFile)
	if err != nil {
		l.Fatal("error initializing data file", zap.Error(err))
	}
	l.Info("contact data file ready", zap.String("path", cfg.DataFile))

	// 准备 handler app
	handlerApp := handlers.NewApp(l, st)

	// 准备 echo 服务
	e := echo.New()
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:    true,
		LogStatus: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			l.Info("request",
				zap.String("URI", v.URI),
				zap.Int("status", v.Status),
			)

			return nil
		},
	}))
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.AllowedOrigins,
		AllowMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodOptions,
		},
		AllowCredentials: true,
	}))

	// 绑定路由：文件版只有留言提交、留言列表与健康检查
	e.GET("/health", handlerApp.HealthCheck)
	e.POST("/api/contact", handlerApp.ContactCreate)
	e.GET("/api/contacts", handlerApp.ContactList)

	// 启动 echo 服务
	if err := e.Start(cfg.Listen); err != nil {
		l.Fatal("shutting down the server", zap.Error(err))
	}
}
