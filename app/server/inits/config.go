package inits

import (
	"eduzone-backend/app/server/config"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

func Config() (*config.Config, error) {
	// 尝试加载 .env 文件，不存在时静默跳过
	_ = godotenv.Load()

	var cfg config.Config

	// 手动配置映射
	{
		mode, exist := os.LookupEnv("MODE")
		cfg.System.IsProd = exist && strings.HasPrefix(strings.ToLower(mode), "p")
	}

	if listen, exist := os.LookupEnv("LISTEN"); !exist {
		cfg.System.Listen = ":5000" // 默认监听地址
	} else {
		cfg.System.Listen = listen
	}

	if dbconn, exist := os.LookupEnv("DB_CONN"); !exist {
		return nil, fmt.Errorf("DB_CONN environment variable not set")
	} else {
		cfg.System.DBConnectionString = dbconn
	}

	if origins, exist := os.LookupEnv("CORS_ALLOWED_ORIGINS"); !exist {
		cfg.System.AllowedOrigins = []string{"http://localhost:3000"} // 默认前端开发地址
	} else {
		cfg.System.AllowedOrigins = strings.Split(origins, ",")
	}

	if sigsk, exist := os.LookupEnv("SIGNATURE_SECRET_KEY"); !exist {
		return nil, fmt.Errorf("SIGNATURE_SECRET_KEY environment variable not set")
	} else {
		cfg.Security.SignatureSecretKey = sigsk
	}

	return &cfg, nil
}
