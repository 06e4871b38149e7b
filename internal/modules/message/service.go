package message

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/iansaccar7/casasbr-rental/internal/domain"
	"github.com/iansaccar7/casasbr-rental/internal/pkg/authz"
)

type Service struct {
	messages MessageRepository
	users    UserReader
	notifier Notifier
}

func NewService(messages MessageRepository, users UserReader, notifier Notifier) *Service {
	return &Service{
		messages: messages,
		users:    users,
		notifier: notifier,
	}
}

// Send stores the message and pushes it to the receiver's websocket if
// they are online. An offline receiver still gets the message on their
// next inbox fetch.
func (s *Service) Send(ctx context.Context, senderID int64, req SendMessageRequest) (*domain.Message, error) {
	if strings.TrimSpace(req.Body) == "" {
		return nil, ErrValidation
	}
	if req.ReceiverID == senderID {
		return nil, ErrValidation
	}

	if _, err := s.users.GetByID(ctx, req.ReceiverID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	msg := &domain.Message{
		SenderID:   senderID,
		ReceiverID: req.ReceiverID,
		PropertyID: req.PropertyID,
		Subject:    req.Subject,
		Body:       req.Body,
	}

	if err := s.messages.Create(ctx, msg); err != nil {
		return nil, err
	}

	if s.notifier != nil {
		s.notifier.SendToUser(req.ReceiverID, msg)
	}

	return msg, nil
}

func (s *Service) GetMyMessages(ctx context.Context, userID int64) ([]domain.Message, error) {
	return s.messages.GetByUserID(ctx, userID)
}

// MarkAsRead flips the read flag. Only the receiver may do it; the flag
// never goes back to unread.
func (s *Service) MarkAsRead(ctx context.Context, messageID, callerID int64, callerRole string) (*domain.Message, error) {
	msg, err := s.messages.GetByID(ctx, messageID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if !authz.OwnerOrAdmin(msg.ReceiverID, callerID, callerRole) {
		return nil, ErrForbidden
	}

	if !msg.IsRead {
		if err := s.messages.MarkAsRead(ctx, messageID); err != nil {
			return nil, err
		}
		msg.IsRead = true
	}

	return msg, nil
}
