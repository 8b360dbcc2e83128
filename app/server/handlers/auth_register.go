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

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (a *App) AuthRegister(c echo.Context) error {
	rctx := c.Request().Context()

	// 绑定请求体
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		a.l.Error("failed to bind json body", zap.Error(err))
		return a.er(c, http.StatusBadRequest, "All fields are required")
	}

	// 校验必填字段
	if req.Name == "" || req.Email == "" || req.Password == "" {
		return a.er(c, http.StatusBadRequest, "All fields are required")
	}

	// 邮箱统一小写后再查重，与写入路径保持一致
	email := strings.ToLower(req.Email)

	var existing models.User
	if err := a.db.WithContext(rctx).First(&existing, "email = ?", email).Error; err == nil {
		return a.er(c, http.StatusBadRequest, "User with this email already exists")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		a.l.Error("failed to find user", zap.Error(err))
		return a.er(c, http.StatusInternalServerError, "Internal Server Error")
	}

	// 处理密码
	passwordHash, err := argon2id.CreateHash(req.Password, argon2id.DefaultParams)
	if err != nil {
		a.l.Error("failed to hash password", zap.Error(err))
		return a.er(c, http.StatusInternalServerError, "Internal Server Error")
	}

	// 创建用户
	user := models.User{
		Name:     req.Name,
		Email:    email,
		Role:     models.RoleUser,
		Password: passwordHash,
	}
	if err := a.db.WithContext(rctx).Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// 与并发注册或启动种子撞车，同样按已存在处理
			return a.er(c, http.StatusBadRequest, "User with this email already exists")
		}
		a.l.Error("failed to create user", zap.String("email", email), zap.Error(err))
		return a.er(c, http.StatusInternalServerError, "Internal Server Error")
	}

	// 签出 JWT
	token, err := a.jwt.SignToken(user.ID, user.Email, user.Role, user.Name, constants.AuthTokenDuration)
	if err != nil {
		a.l.Error("failed to sign token", zap.Error(err))
		return a.er(c, http.StatusInternalServerError, "Internal Server Error")
	}

	// 返回
	return c.JSON(http.StatusCreated, &types.AuthResponse{
		Success: true,
		Message: "User registered successfully",
		Token:   token,
		User: types.UserInfo{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
			Role:  user.Role,
		},
	})
}
