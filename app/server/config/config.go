package config

type Config struct {
	System struct {
		IsProd             bool     // 是否为生产环境
		Listen             string   // 监听地址
		DBConnectionString string   // Postgres 数据库的连接字符串
		AllowedOrigins     []string // 允许跨域请求的来源列表
	}
	Security struct {
		SignatureSecretKey string // 签名密钥，用于签发 JWT ，更新会导致旧有会话失效，但不影响使用
	}
}
