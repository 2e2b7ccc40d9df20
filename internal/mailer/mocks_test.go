package mailer_test

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/tropicacao/leads-api/internal/mailer"
)

type MockProvider struct {
	mock.Mock
}

func (m *MockProvider) Send(ctx context.Context, msg *mailer.Message) (*mailer.SendResult, error) {
	args := m.Called(ctx, msg)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*mailer.SendResult), args.Error(1)
}
