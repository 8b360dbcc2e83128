package handlers

import (
	"eduzone-backend/app/server/middlewares"
	"eduzone-backend/app/server/types"
	"net/http"

	"github.com/labstack/echo/v4"
)

func (a *App) AuthVerify(c echo.Context) error {
	// 中间件已完成令牌校验，这里只负责回显声明
	claims := middlewares.TokenClaims(c)
	if claims == nil {
		return a.er(c, http.StatusUnauthorized, "Invalid token")
	}

	return c.JSON(http.StatusOK, &types.VerifyResponse{
		Success: true,
		User: types.ClaimsInfo{
			UserID: claims.UserID,
			Email:  claims.Email,
			Name:   claims.Name,
			Role:   claims.Role,
		},
	})
}
