package email

import (
	"context"

	"go.uber.org/zap"

	"github.com/bkunyiha/auth-service/internal/auth/domain"
)

// MockClient records nothing and delivers nothing; it logs the send so local
// runs can read the 2FA code off the console.
type MockClient struct {
	logger *zap.Logger
}

func NewMockClient(logger *zap.Logger) *MockClient {
	return &MockClient{logger: logger.Named("mock_email_client")}
}

func (c *MockClient) SendEmail(_ context.Context, recipient domain.Email, subject, content string) error {
	c.logger.Info("sending email",
		zap.String("recipient", recipient.Masked()),
		zap.String("subject", subject),
		zap.String("content", content),
	)

	return nil
}
