package recaptcha

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/tropicacao/leads-api/pkg/httpclient"
	"github.com/tropicacao/leads-api/pkg/logger"
	"github.com/tropicacao/leads-api/pkg/retry"
)

// VerifyURL is Google's reCAPTCHA verification endpoint. Overridable in tests.
var VerifyURL = "https://www.google.com/recaptcha/api/siteverify"

// Response represents the response from Google's reCAPTCHA v3 verification API
type Response struct {
	Success     bool     `json:"success"`
	Score       float64  `json:"score"`
	Action      string   `json:"action"`
	ChallengeTS string   `json:"challenge_ts"`
	Hostname    string   `json:"hostname"`
	ErrorCodes  []string `json:"error-codes"`
}

// Outcome is the interpreted result of a verification call
type Outcome struct {
	Success bool
	Score   float64
	Action  string
}

// Verifier handles reCAPTCHA verification
type Verifier struct {
	secretKey  string
	httpClient httpclient.Client
}

// NewVerifier creates a new reCAPTCHA verifier
func NewVerifier(secretKey string, httpClient httpclient.Client) *Verifier {
	return &Verifier{
		secretKey:  secretKey,
		httpClient: httpClient,
	}
}

// Enabled reports whether verification is configured
func (v *Verifier) Enabled() bool {
	return v.secretKey != ""
}

// Verify posts the token to the verification endpoint and returns the
// interpreted outcome. Transport failures and non-2xx statuses are retried
// per retry.RecaptchaConfig; exhausted retries surface as an error, which
// callers treat as a failed verification rather than an internal fault.
func (v *Verifier) Verify(ctx context.Context, token string) (*Outcome, error) {
	verifyCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	start := time.Now()

	result, err := retry.DoWithResult(verifyCtx, retry.RecaptchaConfig(), "recaptchaVerify", func() (*Response, error) {
		data := url.Values{}
		data.Set("secret", v.secretKey)
		data.Set("response", token)

		resp, err := v.httpClient.Post(
			VerifyURL,
			"application/x-www-form-urlencoded",
			strings.NewReader(data.Encode()),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to verify recaptcha: %w", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return nil, fmt.Errorf("recaptcha verification returned status %d", resp.StatusCode)
		}

		var parsed Response
		if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
			return nil, fmt.Errorf("failed to decode recaptcha response: %w", err)
		}

		return &parsed, nil
	})
	status := "success"
	if err != nil {
		status = "error"
	}
	logger.LogAPICall("recaptcha", "siteverify", status, time.Since(start).Seconds())

	if err != nil {
		return nil, err
	}

	return &Outcome{
		Success: result.Success,
		Score:   result.Score,
		Action:  result.Action,
	}, nil
}
