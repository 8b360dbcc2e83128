package handlers

import (
	"eduzone-backend/app/filestore/store"
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

// 文件存储的留言直接以存储记录的形态返回，字段与数据库版一致（ID 为 UUID 字符串）
type contactListResponse struct {
	Success bool            `json:"success"`
	Data    []store.Contact `json:"data"`
}

func (a *App) ContactCreate(c echo.Context) error {
	// 绑定请求体
	var req contactRequest
	if err := c.Bind(&req); err != nil {
		a.l.Error("failed to bind json body", zap.Error(err))
		return a.er(c, http.StatusBadRequest, "All fields are required")
	}

	// 四个字段都是必填，缺一个就不落盘
	if req.Name == "" || req.Email == "" || req.Subject == "" || req.Message == "" {
		return a.er(c, http.StatusBadRequest, "All fields are required")
	}

	// 写入文件
	if _, err := a.st.Create(req.Name, req.Email, req.Subject, req.Message); err != nil {
		a.l.Error("failed to create contact", zap.Error(err))
		return a.er(c, http.StatusInternalServerError, "Internal Server Error")
	}

	// 返回
	return c.JSON(http.StatusCreated, &types.Message{
		Success: true,
		Message: "Contact form submitted successfully!",
	})
}

func (a *App) ContactList(c echo.Context) error {
	// 排序在存储内完成，这里直接透出
	contacts, err := a.st.List()
	if err != nil {
		a.l.Error("failed to get contact list", zap.Error(err))
		return a.er(c, http.StatusInternalServerError, "Internal Server Error")
	}

	return c.JSON(http.StatusOK, &contactListResponse{
		Success: true,
		Data:    contacts,
	})
}
