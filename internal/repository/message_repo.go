package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/iansaccar7/casasbr-rental/internal/domain"
)

type MessageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) *MessageRepository {
	return &MessageRepository{db: db}
}

func (r *MessageRepository) Create(ctx context.Context, msg *domain.Message) error {
	return r.db.WithContext(ctx).Create(msg).Error
}

func (r *MessageRepository) GetByID(ctx context.Context, id int64) (*domain.Message, error) {
	var msg domain.Message
	err := r.db.WithContext(ctx).First(&msg, id).Error
	if err != nil {
		return nil, err
	}
	return &msg, nil
}

// GetByUserID returns every message the user sent or received, newest first.
func (r *MessageRepository) GetByUserID(ctx context.Context, userID int64) ([]domain.Message, error) {
	var messages []domain.Message
	err := r.db.WithContext(ctx).
		Where("sender_id = ? OR receiver_id = ?", userID, userID).
		Order("created_at DESC").
		Find(&messages).Error
	return messages, err
}

// MarkAsRead flips is_read to true. Already-read messages are untouched,
// which keeps the flag monotonic.
func (r *MessageRepository) MarkAsRead(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).
		Model(&domain.Message{}).
		Where("id = ? AND is_read = ?", id, false).
		Update("is_read", true).Error
}
