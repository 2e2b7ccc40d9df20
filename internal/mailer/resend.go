package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sony/gobreaker"
	"github.com/tropicacao/leads-api/config"
	"github.com/tropicacao/leads-api/pkg/httpclient"
	"github.com/tropicacao/leads-api/pkg/logger"
	"go.uber.org/zap"
)

// SendURL is the Resend send endpoint. Overridable in tests.
var SendURL = "https://api.resend.com/emails"

// resendProvider delivers mail through the Resend HTTP API, protected by a
// circuit breaker so a provider outage degrades fast instead of burning the
// full retry budget on every submission.
type resendProvider struct {
	apiKey     string
	httpClient httpclient.Client
	breaker    *gobreaker.CircuitBreaker
}

type resendRequest struct {
	From    string      `json:"from"`
	To      []string    `json:"to"`
	ReplyTo string      `json:"reply_to,omitempty"`
	Subject string      `json:"subject"`
	HTML    string      `json:"html"`
	Text    string      `json:"text,omitempty"`
	Tags    []resendTag `json:"tags,omitempty"`
}

type resendTag struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type resendResponse struct {
	ID string `json:"id"`
}

// NewProvider builds the configured provider. With no API key, outbound
// email is disabled and a log-only provider is returned: submissions must
// never fail solely because email is unconfigured.
func NewProvider(cfg config.EmailConfig, httpClient httpclient.Client) Provider {
	if cfg.APIKey == "" {
		logger.Warn("Email provider not configured, outbound email disabled")
		return &logOnlyProvider{}
	}

	return &resendProvider{
		apiKey:     cfg.APIKey,
		httpClient: httpClient,
		breaker: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:        "resend",
			MaxRequests: 3,
			Interval:    60 * time.Second,
			Timeout:     30 * time.Second,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
				return counts.Requests >= 3 && failureRatio >= 0.6
			},
			OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
				logger.Info("Circuit breaker state changed",
					zap.String("breaker", name),
					zap.String("from", from.String()),
					zap.String("to", to.String()))
			},
		}),
	}
}

func (p *resendProvider) Send(ctx context.Context, msg *Message) (*SendResult, error) {
	result, err := p.breaker.Execute(func() (interface{}, error) {
		return p.send(ctx, msg)
	})
	if err != nil {
		return nil, err
	}
	return result.(*SendResult), nil
}

func (p *resendProvider) send(ctx context.Context, msg *Message) (*SendResult, error) {
	tags := make([]resendTag, 0, len(msg.Tags))
	for _, t := range msg.Tags {
		tags = append(tags, resendTag{Name: "category", Value: t})
	}

	payload, err := json.Marshal(resendRequest{
		From:    msg.From,
		To:      []string{msg.To},
		ReplyTo: msg.ReplyTo,
		Subject: msg.Subject,
		HTML:    msg.HTML,
		Text:    msg.Text,
		Tags:    tags,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode email payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, SendURL, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to build email request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+p.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("email provider request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("email provider returned status %d: %s", resp.StatusCode, string(body))
	}

	var parsed resendResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("failed to decode email provider response: %w", err)
	}

	return &SendResult{Success: true, MessageID: parsed.ID}, nil
}

// logOnlyProvider stands in when no delivery credentials are configured. It
// reports a degraded-but-successful outcome so the pipeline proceeds.
type logOnlyProvider struct{}

func (p *logOnlyProvider) Send(_ context.Context, msg *Message) (*SendResult, error) {
	logger.Info("Email delivery skipped (provider unconfigured)",
		zap.String("to", msg.To),
		zap.String("subject", msg.Subject))
	return &SendResult{Success: true}, nil
}
