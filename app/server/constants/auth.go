package constants

import "time"

// 会话令牌有效期，过期后只能重新登录，无法提前吊销
const AuthTokenDuration = 7 * 24 * time.Hour

// 初始账户，仅在对应账户不存在时写入
const (
	SeedAdminName     = "Admin User"
	SeedAdminEmail    = "admin@eduzone.com"
	SeedAdminPassword = "admin123"

	SeedDemoName     = "Demo User"
	SeedDemoEmail    = "user@example.com"
	SeedDemoPassword = "user123"
)
