package services_test

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/tropicacao/leads-api/internal/mailer"
	"github.com/tropicacao/leads-api/pkg/recaptcha"
)

type MockCaptchaVerifier struct {
	mock.Mock
}

func (m *MockCaptchaVerifier) Enabled() bool {
	return m.Called().Bool(0)
}

func (m *MockCaptchaVerifier) Verify(ctx context.Context, token string) (*recaptcha.Outcome, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*recaptcha.Outcome), args.Error(1)
}

type MockDispatcher struct {
	mock.Mock
}

func (m *MockDispatcher) Dispatch(ctx context.Context, notification, confirmation *mailer.Message) mailer.DispatchResult {
	args := m.Called(ctx, notification, confirmation)
	return args.Get(0).(mailer.DispatchResult)
}
