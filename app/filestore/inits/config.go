package inits

import (
	"eduzone-backend/app/filestore/config"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

func Config() (*config.Config, error) {
	// 尝试加载 .env 文件，不存在时静默跳过
	_ = godotenv.Load()

	var cfg config.Config

	{
		mode, exist := os.LookupEnv("MODE")
		cfg.IsProd = exist && strings.HasPrefix(strings.ToLower(mode), "p")
	}

	if listen, exist := os.LookupEnv("LISTEN"); !exist {
		cfg.Listen = ":5000" // 默认监听地址
	} else {
		cfg.Listen = listen
	}

	if dataFile, exist := os.LookupEnv("DATA_FILE"); !exist {
		cfg.DataFile = "contact-data.json" // 默认数据文件，放在工作目录下
	} else {
		cfg.DataFile = dataFile
	}

	if origins, exist := os.LookupEnv("CORS_ALLOWED_ORIGINS"); !exist {
		cfg.AllowedOrigins = []string{"http://localhost:3000"} // 默认前端开发地址
	} else {
		cfg.AllowedOrigins = strings.Split(origins, ",")
	}

	return &cfg, nil
}
