package handlers

import (
	"net/http"
	"testing"
	"time"

	"eduzone-backend/app/server/models"
	"eduzone-backend/app/server/types"

	"github.com/steinfletcher/apitest"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestContactCreate(t *testing.T) {
	e, a := newTestApp(t)

	res := apitest.Handler(e).
		Post("/api/contact").
		JSON(`{"name":"Alice","email":"alice@example.com","subject":"Hello","message":"First message"}`).
		Expect(t).
		Status(http.StatusCreated).
		End()

	var body types.Message
	decodeBody(t, res.Response, &body)
	require.True(t, body.Success)
	require.Equal(t, "Contact form submitted successfully!", body.Message)

	var count int64
	require.NoError(t, a.db.Model(&models.Contact{}).Count(&count).Error)
	require.EqualValues(t, 1, count)
}

func TestContactCreate_MissingFields(t *testing.T) {
	e, a := newTestApp(t)

	payloads := []string{
		`{"email":"a@example.com","subject":"s","message":"m"}`,
		`{"name":"A","subject":"s","message":"m"}`,
		`{"name":"A","email":"a@example.com","message":"m"}`,
		`{"name":"A","email":"a@example.com","subject":"s"}`,
		`{"name":"A","email":"a@example.com","subject":"s","message":""}`,
	}
	for _, payload := range payloads {
		res := apitest.Handler(e).
			Post("/api/contact").
			JSON(payload).
			Expect(t).
			Status(http.StatusBadRequest).
			End()

		var body types.Message
		decodeBody(t, res.Response, &body)
		require.Equal(t, "All fields are required", body.Message)
	}

	// 校验失败的请求一条都不应入库
	var count int64
	require.NoError(t, a.db.Model(&models.Contact{}).Count(&count).Error)
	require.EqualValues(t, 0, count)
}

func TestContactList_AccessControl(t *testing.T) {
	e, a := newTestApp(t)

	// 没有令牌
	res := apitest.Handler(e).
		Get("/api/contacts").
		Expect(t).
		Status(http.StatusUnauthorized).
		End()

	var body types.Message
	decodeBody(t, res.Response, &body)
	require.Equal(t, "Authentication token missing", body.Message)

	// 普通用户令牌
	userToken, err := a.jwt.SignToken(7, "user@example.com", models.RoleUser, "Demo User", time.Hour)
	require.NoError(t, err)

	res = apitest.Handler(e).
		Get("/api/contacts").
		Header("Authorization", "Bearer "+userToken).
		Expect(t).
		Status(http.StatusForbidden).
		End()

	decodeBody(t, res.Response, &body)
	require.Equal(t, "Admin access required", body.Message)

	// 管理员令牌
	adminToken, err := a.jwt.SignToken(1, "admin@eduzone.com", models.RoleAdmin, "Admin User", time.Hour)
	require.NoError(t, err)

	apitest.Handler(e).
		Get("/api/contacts").
		Header("Authorization", "Bearer "+adminToken).
		Expect(t).
		Status(http.StatusOK).
		End()
}

func TestContactList_NewestFirst(t *testing.T) {
	e, a := newTestApp(t)

	// 按不同创建时间写入三条，乱序插入
	now := time.Now()
	for _, contact := range []models.Contact{
		{Model: gorm.Model{CreatedAt: now.Add(-1 * time.Hour)}, Name: "B", Email: "b@example.com", Subject: "middle", Message: "m"},
		{Model: gorm.Model{CreatedAt: now}, Name: "C", Email: "c@example.com", Subject: "newest", Message: "m"},
		{Model: gorm.Model{CreatedAt: now.Add(-2 * time.Hour)}, Name: "A", Email: "a@example.com", Subject: "oldest", Message: "m"},
	} {
		require.NoError(t, a.db.Create(&contact).Error)
	}

	adminToken, err := a.jwt.SignToken(1, "admin@eduzone.com", models.RoleAdmin, "Admin User", time.Hour)
	require.NoError(t, err)

	res := apitest.Handler(e).
		Get("/api/contacts").
		Header("Authorization", "Bearer "+adminToken).
		Expect(t).
		Status(http.StatusOK).
		End()

	var list types.ContactListResponse
	decodeBody(t, res.Response, &list)
	require.True(t, list.Success)
	require.Len(t, list.Data, 3)
	require.Equal(t, "newest", list.Data[0].Subject)
	require.Equal(t, "middle", list.Data[1].Subject)
	require.Equal(t, "oldest", list.Data[2].Subject)
}
