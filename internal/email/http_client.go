package email

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/bkunyiha/auth-service/internal/auth/domain"
)

// HTTPClient posts messages to an email relay service. The transport timeout
// bounds the 2FA notification call: if the relay never answers, the login
// aborts instead of hanging; there is no retry.
type HTTPClient struct {
	baseURL    string
	sender     string
	httpClient *http.Client
	logger     *zap.Logger
}

func NewHTTPClient(baseURL, sender string, timeout time.Duration, logger *zap.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL:    baseURL,
		sender:     sender,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger.Named("http_email_client"),
	}
}

type sendRequest struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

func (c *HTTPClient) SendEmail(ctx context.Context, recipient domain.Email, subject, content string) error {
	payload, err := json.Marshal(sendRequest{
		From:    c.sender,
		To:      recipient.String(),
		Subject: subject,
		Body:    content,
	})
	if err != nil {
		return fmt.Errorf("marshal email request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/email", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build email request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("email relay call failed", zap.Error(err))
		return fmt.Errorf("send email: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Error("email relay rejected message", zap.Int("status", resp.StatusCode))
		return fmt.Errorf("email relay returned status %d", resp.StatusCode)
	}

	return nil
}
