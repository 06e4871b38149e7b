package message

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"github.com/iansaccar7/casasbr-rental/internal/domain"
)

type MockMessageRepository struct {
	mock.Mock
}

func (m *MockMessageRepository) Create(ctx context.Context, msg *domain.Message) error {
	args := m.Called(ctx, msg)
	if msg != nil {
		msg.ID = 77 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockMessageRepository) GetByID(ctx context.Context, id int64) (*domain.Message, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Message), args.Error(1)
}

func (m *MockMessageRepository) GetByUserID(ctx context.Context, userID int64) ([]domain.Message, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Message), args.Error(1)
}

func (m *MockMessageRepository) MarkAsRead(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockUserReader struct {
	mock.Mock
}

func (m *MockUserReader) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) SendToUser(userID int64, payload interface{}) bool {
	args := m.Called(userID, payload)
	return args.Bool(0)
}

func TestService_Send_Success(t *testing.T) {
	mockMessages := new(MockMessageRepository)
	mockUsers := new(MockUserReader)
	mockNotifier := new(MockNotifier)

	mockUsers.On("GetByID", mock.Anything, int64(7)).Return(&domain.User{ID: 7}, nil)
	mockMessages.On("Create", mock.Anything, mock.Anything).Return(nil)
	mockNotifier.On("SendToUser", int64(7), mock.Anything).Return(true)

	service := NewService(mockMessages, mockUsers, mockNotifier)

	msg, err := service.Send(context.Background(), 42, SendMessageRequest{
		ReceiverID: 7,
		Subject:    "Disponibilidade em julho",
		Body:       "A casa esta livre na primeira semana?",
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(42), msg.SenderID)
	assert.False(t, msg.IsRead)
	mockNotifier.AssertExpectations(t)
}

func TestService_Send_OfflineReceiverStillStored(t *testing.T) {
	mockMessages := new(MockMessageRepository)
	mockUsers := new(MockUserReader)
	mockNotifier := new(MockNotifier)

	mockUsers.On("GetByID", mock.Anything, int64(7)).Return(&domain.User{ID: 7}, nil)
	mockMessages.On("Create", mock.Anything, mock.Anything).Return(nil)
	// Push fails but the send still succeeds
	mockNotifier.On("SendToUser", int64(7), mock.Anything).Return(false)

	service := NewService(mockMessages, mockUsers, mockNotifier)

	msg, err := service.Send(context.Background(), 42, SendMessageRequest{
		ReceiverID: 7,
		Body:       "oi",
	})

	assert.NoError(t, err)
	assert.NotZero(t, msg.ID)
}

func TestService_Send_EmptyBody(t *testing.T) {
	service := NewService(new(MockMessageRepository), new(MockUserReader), nil)

	_, err := service.Send(context.Background(), 42, SendMessageRequest{
		ReceiverID: 7,
		Body:       "   ",
	})

	assert.ErrorIs(t, err, ErrValidation)
}

func TestService_Send_ToSelf(t *testing.T) {
	service := NewService(new(MockMessageRepository), new(MockUserReader), nil)

	_, err := service.Send(context.Background(), 42, SendMessageRequest{
		ReceiverID: 42,
		Body:       "nota pessoal",
	})

	assert.ErrorIs(t, err, ErrValidation)
}

func TestService_Send_ReceiverMissing(t *testing.T) {
	mockMessages := new(MockMessageRepository)
	mockUsers := new(MockUserReader)

	mockUsers.On("GetByID", mock.Anything, int64(404)).Return(nil, gorm.ErrRecordNotFound)

	service := NewService(mockMessages, mockUsers, nil)

	_, err := service.Send(context.Background(), 42, SendMessageRequest{
		ReceiverID: 404,
		Body:       "ola",
	})

	assert.ErrorIs(t, err, ErrNotFound)
	mockMessages.AssertNotCalled(t, "Create")
}

func TestService_MarkAsRead_ReceiverOnly(t *testing.T) {
	mockMessages := new(MockMessageRepository)

	mockMessages.On("GetByID", mock.Anything, int64(5)).Return(&domain.Message{
		ID:         5,
		SenderID:   42,
		ReceiverID: 7,
	}, nil)

	service := NewService(mockMessages, new(MockUserReader), nil)

	// The sender cannot mark their own outgoing message read
	_, err := service.MarkAsRead(context.Background(), 5, 42, string(domain.RoleUser))

	assert.ErrorIs(t, err, ErrForbidden)
}

func TestService_MarkAsRead_Success(t *testing.T) {
	mockMessages := new(MockMessageRepository)

	mockMessages.On("GetByID", mock.Anything, int64(5)).Return(&domain.Message{
		ID:         5,
		SenderID:   42,
		ReceiverID: 7,
		IsRead:     false,
	}, nil)
	mockMessages.On("MarkAsRead", mock.Anything, int64(5)).Return(nil)

	service := NewService(mockMessages, new(MockUserReader), nil)

	msg, err := service.MarkAsRead(context.Background(), 5, 7, string(domain.RoleUser))

	assert.NoError(t, err)
	assert.True(t, msg.IsRead)
}

func TestService_MarkAsRead_Idempotent(t *testing.T) {
	mockMessages := new(MockMessageRepository)

	mockMessages.On("GetByID", mock.Anything, int64(5)).Return(&domain.Message{
		ID:         5,
		ReceiverID: 7,
		IsRead:     true,
	}, nil)

	service := NewService(mockMessages, new(MockUserReader), nil)

	msg, err := service.MarkAsRead(context.Background(), 5, 7, string(domain.RoleUser))

	assert.NoError(t, err)
	assert.True(t, msg.IsRead)
	mockMessages.AssertNotCalled(t, "MarkAsRead")
}
