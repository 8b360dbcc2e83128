package handlers

import (
	"eduzone-backend/app/server/jwt"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	l   *zap.Logger // 日志
	db  *gorm.DB    // 数据库
	jwt *jwt.JWT    // JWT ，用于无状态验证
}

func NewApp(l *zap.Logger, db *gorm.DB, j *jwt.JWT) *App {
	return &App{
		l:   l,
		db:  db,
		jwt: j,
	}
}
