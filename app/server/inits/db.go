package inits

import (
	"eduzone-backend/app/server/constants"
	"eduzone-backend/app/server/models"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alexedwards/argon2id"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func DB(conn string) (db *gorm.DB, err error) {
	// 打开连接，首次连接失败视为致命错误
	if db, err = gorm.Open(postgres.Open(conn), &gorm.Config{
		TranslateError: true, // 把唯一索引冲突翻译为 gorm.ErrDuplicatedKey
	}); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// 迁移
	if err = mig(db); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	// 初始化启动数据
	if err = initData(db); err != nil {
		return nil, fmt.Errorf("failed to init data into database: %w", err)
	}

	// 返回
	return db, nil
}

func mig(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Contact{},
	)
}

// initData 写入初始账户，可重复执行：已存在时不再写入
func initData(db *gorm.DB) (err error) {
	// 初始化管理员：存在任意 admin 角色的账户就跳过
	var admin models.User
	if err = db.First(&admin, "role = ?", models.RoleAdmin).Error; err == nil {
		// 已有管理员
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to find admin user: %w", err)
	} else {
		// 创建密码
		var password string
		if password, err = argon2id.CreateHash(constants.SeedAdminPassword, argon2id.DefaultParams); err != nil {
			return fmt.Errorf("failed to generate password: %w", err)
		}

		// 插入记录，与并发注册撞车时唯一索引会挡下重复项
		if err = db.Create(&models.User{
			Name:     constants.SeedAdminName,
			Email:    strings.ToLower(constants.SeedAdminEmail),
			Role:     models.RoleAdmin,
			Password: password,
		}).Error; err != nil && !errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("failed to create admin user: %w", err)
		}
	}

	// 初始化演示账户：按邮箱判断
	var demo models.User
	if err = db.First(&demo, "email = ?", strings.ToLower(constants.SeedDemoEmail)).Error; err == nil {
		// 已有演示账户
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to find demo user: %w", err)
	} else {
		// 创建密码
		var password string
		if password, err = argon2id.CreateHash(constants.SeedDemoPassword, argon2id.DefaultParams); err != nil {
			return fmt.Errorf("failed to generate password: %w", err)
		}

		// 插入记录
		if err = db.Create(&models.User{
			Name:     constants.SeedDemoName,
			Email:    strings.ToLower(constants.SeedDemoEmail),
			Role:     models.RoleUser,
			Password: password,
		}).Error; err != nil && !errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("failed to create demo user: %w", err)
		}
	}

	// 已有数据或全部导入成功
	return nil
}

// DBKeepAlive 周期性 ping 数据库，断开期间记录日志并等待连接池自行恢复
func DBKeepAlive(db *gorm.DB, l *zap.Logger) {
	sqlDB, err := db.DB()
	if err != nil {
		l.Error("failed to get database handle", zap.Error(err))
		return
	}

	for {
		time.Sleep(constants.DBKeepAliveInterval)
		if err := sqlDB.Ping(); err != nil {
			l.Error("database connection lost, retrying", zap.Error(err))
		}
	}
}
