package message

import (
	"context"

	"github.com/iansaccar7/casasbr-rental/internal/domain"
)

type MessageRepository interface {
	Create(ctx context.Context, msg *domain.Message) error
	GetByID(ctx context.Context, id int64) (*domain.Message, error)
	GetByUserID(ctx context.Context, userID int64) ([]domain.Message, error)
	MarkAsRead(ctx context.Context, id int64) error
}

// UserReader confirms the receiver exists before a message is stored.
type UserReader interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

// Notifier pushes a just-created message to the receiver if they are
// connected. Delivery is best effort.
type Notifier interface {
	SendToUser(userID int64, payload interface{}) bool
}
