package handlers

import (
	"eduzone-backend/app/server/models"
	"eduzone-backend/app/server/types"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func (a *App) ContactList(c echo.Context) error {
	rctx := c.Request().Context()

	// 按创建时间倒序拉取全部留言，排序交给数据库完成
	var contacts []models.Contact
	if err := a.db.WithContext(rctx).Order("created_at DESC").Find(&contacts).Error; err != nil {
		a.l.Error("failed to get contact list", zap.Error(err))
		return a.er(c, http.StatusInternalServerError, "Internal Server Error")
	}

	resContacts := []types.ContactInfo{}
	for _, contact := range contacts {
		resContacts = append(resContacts, types.ContactInfo{
			ID:        contact.ID,
			Name:      contact.Name,
			Email:     contact.Email,
			Subject:   contact.Subject,
			Message:   contact.Message,
			CreatedAt: contact.CreatedAt,
		})
	}

	return c.JSON(http.StatusOK, &types.ContactListResponse{
		Success: true,
		Data:    resContacts,
	})
}
