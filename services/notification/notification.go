package notificationService

import (
	"coursehub/apperr"
	"coursehub/logging"
	"coursehub/models"

	"gorm.io/gorm"
)

// Notify stores a notification for userID. It never fails the caller:
// storage errors are logged and dropped.
func Notify(db *gorm.DB, userID uint, kind, title, message, link string) {
	n := models.Notification{
		UserID:  userID,
		Type:    kind,
		Title:   title,
		Message: message,
	}
	if link != "" {
		n.Link = &link
	}
	if err := db.Create(&n).Error; err != nil {
		logging.Warn().Err(err).Uint("userId", userID).Str("type", kind).Msg("Failed to create notification")
	}
}

type ListResult struct {
	Notifications []models.Notification `json:"notifications"`
	UnreadCount   int64                 `json:"unreadCount"`
}

// List returns the newest notifications of a user along with the unread total.
func List(db *gorm.DB, userID uint, limit int, unreadOnly bool) (*ListResult, error) {
	q := db.Where("user_id = ?", userID)
	if unreadOnly {
		q = q.Where("is_read = ?", false)
	}

	res := &ListResult{Notifications: []models.Notification{}}
	if err := q.Order("created_at DESC, id DESC").Limit(limit).Find(&res.Notifications).Error; err != nil {
		return nil, apperr.Wrap(err, "failed to list notifications")
	}
	if err := db.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Count(&res.UnreadCount).Error; err != nil {
		return nil, apperr.Wrap(err, "failed to count unread notifications")
	}
	return res, nil
}

// MarkRead marks one notification, or every notification when all is set.
// It returns the number of rows changed.
func MarkRead(db *gorm.DB, userID uint, id *uint, all bool) (int64, error) {
	q := db.Model(&models.Notification{}).Where("user_id = ? AND is_read = ?", userID, false)
	switch {
	case all:
	case id != nil:
		q = q.Where("id = ?", *id)
	default:
		return 0, apperr.Invalid("Provide id or markAll!", nil)
	}

	res := q.Update("is_read", true)
	if res.Error != nil {
		return 0, apperr.Wrap(res.Error, "failed to mark notifications read")
	}
	return res.RowsAffected, nil
}
