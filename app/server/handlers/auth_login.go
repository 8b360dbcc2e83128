package handlers

import (
	"eduzone-backend/app/server/constants"
	"eduzone-backend/app/server/models"
	"eduzone-backend/app/server/types"
	"errors"
	"net/http"
	"strings"

	"github.com/alexedwards/argon2id"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (a *App) AuthLogin(c echo.Context) error {
	rctx := c.Request().Context()

	// 绑定请求体
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		a.l.Error("failed to bind json body", zap.Error(err))
		return a.er(c, http.StatusBadRequest, "Email and password are required")
	}

	// 校验必填字段
	if req.Email == "" || req.Password == "" {
		return a.er(c, http.StatusBadRequest, "Email and password are required")
	}

	// 查询路径与写入路径一样先转小写
	var user models.User
	if err := a.db.WithContext(rctx).First(&user, "email = ?", strings.ToLower(req.Email)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// 账户不存在与密码错误返回完全相同的内容，避免暴露邮箱是否注册
			return a.er(c, http.StatusBadRequest, "Invalid email or password")
		} else {
			a.l.Error("failed to find user", zap.Error(err))
			return a.er(c, http.StatusInternalServerError, "Internal Server Error")
		}
	}

	// 提取密码 hash 并进行校验
	if match, _, err := argon2id.CheckHash(req.Password, user.Password); err != nil {
		a.l.Error("failed to check password", zap.Error(err))
		return a.er(c, http.StatusInternalServerError, "Internal Server Error")
	} else if !match {
		// 密码不一致
		return a.er(c, http.StatusBadRequest, "Invalid email or password")
	}

	// 签出 JWT
	token, err := a.jwt.SignToken(user.ID, user.Email, user.Role, user.Name, constants.AuthTokenDuration)
	if err != nil {
		a.l.Error("failed to sign token", zap.Error(err))
		return a.er(c, http.StatusInternalServerError, "Internal Server Error")
	}

	// 返回
	return c.JSON(http.StatusOK, &types.AuthResponse{
		Success: true,
		Message: "Login successful",
		Token:   token,
		User: types.UserInfo{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
			Role:  user.Role,
		},
	})
}
