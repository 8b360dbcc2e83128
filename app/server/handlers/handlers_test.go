package handlers

import (
	"encoding/json"
	"net/http"
	"path/filepath"
	"testing"

	"eduzone-backend/app/server/jwt"
	"eduzone-backend/app/server/models"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newTestApp 用 sqlite 搭一个完整的路由栈，中间件配置与正式服务一致
func newTestApp(t *testing.T) (*echo.Echo, *App) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Contact{}))

	j, err := jwt.New("test-signature-secret")
	require.NoError(t, err)

	a := NewApp(zap.NewNop(), db, j)

	e := echo.New()
	a.RegisterRoutes(e)

	return e, a
}

func decodeBody(t *testing.T, res *http.Response, v interface{}) {
	t.Helper()
	require.NoError(t, json.NewDecoder(res.Body).Decode(v))
}
