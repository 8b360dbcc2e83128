package models

import "gorm.io/gorm"

// 角色只有两种：普通用户与管理员
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	gorm.Model

	// 基础信息
	Name  string `gorm:"column:name"`              // 显示名称
	Email string `gorm:"column:email;uniqueIndex"` // 邮箱，全局唯一，入库前统一转为小写
	Role  string `gorm:"column:role;default:user"` // 角色： user 或 admin

	// 登录与授权认证相关
	Password string `gorm:"column:password" json:"-"` // 密码，使用 argon2id 储存，永远不对外返回
}
