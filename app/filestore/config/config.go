package config

type Config struct {
	// 基础配置
	IsProd bool

	// 服务配置
	Listen         string   // 监听地址
	DataFile       string   // 留言数据文件路径
	AllowedOrigins []string // 允许跨域请求的来源列表
}
