package mailer_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/tropicacao/leads-api/internal/mailer"
)

func TestDispatcher_BothChannelsSucceed(t *testing.T) {
	provider := new(MockProvider)
	notification := &mailer.Message{To: "sales@tropicacao.com", Subject: "notification"}
	confirmation := &mailer.Message{To: "client@example.com", Subject: "confirmation"}

	provider.On("Send", mock.Anything, notification).Return(&mailer.SendResult{Success: true, MessageID: "n-1"}, nil).Once()
	provider.On("Send", mock.Anything, confirmation).Return(&mailer.SendResult{Success: true, MessageID: "c-1"}, nil).Once()

	result := mailer.NewDispatcher(provider).Dispatch(context.Background(), notification, confirmation)

	assert.True(t, result.Notification.Success)
	assert.Equal(t, "n-1", result.Notification.MessageID)
	assert.True(t, result.Confirmation.Success)
	provider.AssertExpectations(t)
}

func TestDispatcher_ConfirmationFailureDoesNotAffectNotification(t *testing.T) {
	provider := new(MockProvider)
	notification := &mailer.Message{To: "sales@tropicacao.com", Subject: "notification"}
	confirmation := &mailer.Message{To: "client@example.com", Subject: "confirmation"}

	provider.On("Send", mock.Anything, notification).Return(&mailer.SendResult{Success: true, MessageID: "n-1"}, nil).Once()
	// The failing channel burns its full retry budget
	provider.On("Send", mock.Anything, confirmation).Return(nil, errors.New("mailbox rejected")).Times(3)

	result := mailer.NewDispatcher(provider).Dispatch(context.Background(), notification, confirmation)

	assert.True(t, result.Notification.Success)
	assert.False(t, result.Confirmation.Success)
	assert.Contains(t, result.Confirmation.Error, "mailbox rejected")
	provider.AssertExpectations(t)
}

func TestDispatcher_RetriesTransientFailure(t *testing.T) {
	provider := new(MockProvider)
	notification := &mailer.Message{To: "sales@tropicacao.com", Subject: "notification"}

	provider.On("Send", mock.Anything, notification).Return(nil, errors.New("timeout")).Once()
	provider.On("Send", mock.Anything, notification).Return(&mailer.SendResult{Success: true, MessageID: "n-2"}, nil).Once()

	result := mailer.NewDispatcher(provider).Dispatch(context.Background(), notification, nil)

	assert.True(t, result.Notification.Success)
	assert.Equal(t, "n-2", result.Notification.MessageID)
	provider.AssertExpectations(t)
}

func TestDispatcher_NilConfirmationSkipsProvider(t *testing.T) {
	provider := new(MockProvider)
	notification := &mailer.Message{To: "sales@tropicacao.com", Subject: "notification"}

	provider.On("Send", mock.Anything, notification).Return(&mailer.SendResult{Success: true}, nil).Once()

	result := mailer.NewDispatcher(provider).Dispatch(context.Background(), notification, nil)

	assert.True(t, result.Notification.Success)
	assert.True(t, result.Confirmation.Success)
	provider.AssertNumberOfCalls(t, "Send", 1)
}
