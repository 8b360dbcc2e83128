package models

import "gorm.io/gorm"

type Contact struct {
	gorm.Model

	// 留言表单的四个必填字段，创建后不再变更
	Name    string `gorm:"column:name"`    // 留言人名称
	Email   string `gorm:"column:email"`   // 留言人邮箱
	Subject string `gorm:"column:subject"` // 主题
	Message string `gorm:"column:message"` // 正文
}
