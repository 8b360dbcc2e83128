package middlewares

import (
	appjwt "eduzone-backend/app/server/jwt"
	"eduzone-backend/app/server/models"
	"eduzone-backend/app/server/types"
	"net/http"

	jwtv5 "github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
)

// Auth 校验 Bearer 令牌，并把解析出的声明放入请求上下文
func Auth(j *appjwt.JWT) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		SigningKey: j.Key(),
		NewClaimsFunc: func(c echo.Context) jwtv5.Claims {
			return &appjwt.Claims{}
		},
		ErrorHandler: func(c echo.Context, err error) error {
			// 缺失与无效（含过期、签名不符）统一按未认证处理，只区分提示文案
			message := "Invalid token"
			if c.Request().Header.Get(echo.HeaderAuthorization) == "" {
				message = "Authentication token missing"
			}
			return c.JSON(http.StatusUnauthorized, &types.Message{
				Success: false,
				Message: message,
			})
		},
	})
}

// AdminOnly 要求已通过 Auth 的用户具有 admin 角色，需要挂在 Auth 之后
func AdminOnly() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims := TokenClaims(c)
			if claims == nil {
				return c.JSON(http.StatusUnauthorized, &types.Message{
					Success: false,
					Message: "Authentication token missing",
				})
			}

			// 验证权限
			if claims.Role != models.RoleAdmin {
				return c.JSON(http.StatusForbidden, &types.Message{
					Success: false,
					Message: "Admin access required",
				})
			}

			// 继续处理
			return next(c)
		}
	}
}

// TokenClaims 从请求上下文取出已验证的声明，未经过 Auth 时返回 nil
func TokenClaims(c echo.Context) *appjwt.Claims {
	token, ok := c.Get("user").(*jwtv5.Token)
	if !ok {
		return nil
	}

	claims, ok := token.Claims.(*appjwt.Claims)
	if !ok {
		return nil
	}

	return claims
}
