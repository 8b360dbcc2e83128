package types

import "time"

// Message 只携带执行结果与说明的响应，失败时 Success 恒为 false
type Message struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// UserInfo 账户的公开视图，不包含密码散列
type UserInfo struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// AuthResponse 注册与登录的成功响应
type AuthResponse struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Token   string   `json:"token"`
	User    UserInfo `json:"user"`
}

// ClaimsInfo 令牌校验接口回显的声明内容，键名沿用历史接口的 userId
type ClaimsInfo struct {
	UserID uint   `json:"userId"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	Role   string `json:"role"`
}

type VerifyResponse struct {
	Success bool       `json:"success"`
	User    ClaimsInfo `json:"user"`
}

// ContactInfo 留言的公开视图
type ContactInfo struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

type ContactListResponse struct {
	Success bool          `json:"success"`
	Data    []ContactInfo `json:"data"`
}

type HealthStatus struct {
	Status string `json:"status"`
}
