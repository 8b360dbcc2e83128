package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type JWT struct {
	key []byte
}

// Claims 会话令牌携带的身份声明，签发后不需要查库即可还原
type Claims struct {
	jwt.RegisteredClaims

	UserID uint   `json:"userId"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	Name   string `json:"name"`
}

func New(key string) (*JWT, error) {
	if len(key) == 0 {
		return nil, errors.New("key is empty")
	}

	return &JWT{key: []byte(key)}, nil
}

// SignToken 以指定有效期签出令牌
func (j *JWT) SignToken(userID uint, email string, role string, name string, validity time.Duration) (string, error) {
	now := time.Now()

	// 创建声明
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(validity)),
		},
		UserID: userID,
		Email:  email,
		Role:   role,
		Name:   name,
	}

	// 创建令牌
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	// 签名并返回
	return token.SignedString(j.key)
}

// ParseClaims 校验签名与有效期，任一不通过都返回错误
func (j *JWT) ParseClaims(tokenString string) (*Claims, error) {
	// 检查是否有效
	if len(tokenString) == 0 {
		return nil, errors.New("token string is empty")
	}

	// 映射字段
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return j.key, nil
	})
	if err != nil {
		return nil, fmt.Errorf("parse jwt failed: %w", err)
	}

	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	return claims, nil
}

// Key 返回签名密钥，交给 echo-jwt 中间件使用
func (j *JWT) Key() []byte {
	return j.key
}
