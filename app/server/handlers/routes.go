package handlers

import (
	"eduzone-backend/app/server/middlewares"

	"github.com/labstack/echo/v4"
)

// RegisterRoutes 绑定全部路由
func (a *App) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", a.HealthCheck)

	api := e.Group("/api")

	// 留言表单：提交无需认证，列表只对管理员开放
	api.POST("/contact", a.ContactCreate)
	api.GET("/contacts", a.ContactList, middlewares.Auth(a.jwt), middlewares.AdminOnly())

	// 认证
	auth := api.Group("/auth")
	auth.POST("/register", a.AuthRegister)
	auth.POST("/login", a.AuthLogin)
	auth.GET("/verify", a.AuthVerify, middlewares.Auth(a.jwt))
}
