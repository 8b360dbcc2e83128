package handlers

import (
	"eduzone-backend/app/server/models"
	"eduzone-backend/app/server/types"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

func (a *App) ContactCreate(c echo.Context) error {
	rctx := c.Request().Context()

	// 绑定请求体
	var req contactRequest
	if err := c.Bind(&req); err != nil {
		a.l.Error("failed to bind json body", zap.Error(err))
		return a.er(c, http.StatusBadRequest, "All fields are required")
	}

	// 四个字段都是必填，缺一个就不入库
	if req.Name == "" || req.Email == "" || req.Subject == "" || req.Message == "" {
		return a.er(c, http.StatusBadRequest, "All fields are required")
	}

	// 创建留言
	contact := models.Contact{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	}
	if err := a.db.WithContext(rctx).Create(&contact).Error; err != nil {
		a.l.Error("failed to create contact", zap.Error(err))
		return a.er(c, http.StatusInternalServerError, "Internal Server Error")
	}

	// 返回
	return c.JSON(http.StatusCreated, &types.Message{
		Success: true,
		Message: "Contact form submitted successfully!",
	})
}
