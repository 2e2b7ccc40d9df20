package services

import (
	"context"
	"time"

	"github.com/tropicacao/leads-api/config"
	"github.com/tropicacao/leads-api/internal/forms"
	"github.com/tropicacao/leads-api/internal/mailer"
	"github.com/tropicacao/leads-api/internal/models"
	apperrors "github.com/tropicacao/leads-api/pkg/errors"
	"github.com/tropicacao/leads-api/pkg/logger"
	"github.com/tropicacao/leads-api/pkg/metrics"
	"github.com/tropicacao/leads-api/pkg/recaptcha"
	"github.com/tropicacao/leads-api/pkg/tracing"
	"go.uber.org/zap"
)

// CaptchaVerifier is the bot-score check used by the submission pipeline.
type CaptchaVerifier interface {
	Enabled() bool
	Verify(ctx context.Context, token string) (*recaptcha.Outcome, error)
}

// Dispatcher delivers the notification and confirmation emails.
type Dispatcher interface {
	Dispatch(ctx context.Context, notification, confirmation *mailer.Message) mailer.DispatchResult
}

// LeadService runs the submission pipeline: field validation, captcha
// policy, honeypot short-circuit, then email dispatch. Failures before
// dispatch surface as typed errors; delivery failures are response data.
type LeadService struct {
	cfg        *config.Config
	verifier   CaptchaVerifier
	dispatcher Dispatcher
}

// NewLeadService creates a new lead submission service
func NewLeadService(cfg *config.Config, verifier CaptchaVerifier, dispatcher Dispatcher) *LeadService {
	return &LeadService{
		cfg:        cfg,
		verifier:   verifier,
		dispatcher: dispatcher,
	}
}

// Submit processes one lead submission end to end and returns the success
// payload, or a typed error the handler maps to an HTTP status.
func (s *LeadService) Submit(ctx context.Context, sub *models.Submission, clientIP string) (*models.SubmitResponse, error) {
	ctx, span := tracing.StartSpan(ctx, "lead_service.submit")
	defer span.End()

	ft, err := models.ParseFormType(sub.FormType)
	if err != nil {
		// Raw user input must not become a metric label
		metrics.LeadSubmissions.WithLabelValues("unknown", "unknown_type").Inc()
		return nil, apperrors.UnknownFormTypeError(sub.FormType)
	}

	fields, err := forms.Validate(ft, sub.Fields)
	if err != nil {
		metrics.LeadSubmissions.WithLabelValues(string(ft), "invalid").Inc()
		return nil, err
	}

	if err := s.checkCaptcha(ctx, sub.RecaptchaToken, clientIP); err != nil {
		metrics.LeadSubmissions.WithLabelValues(string(ft), "captcha_rejected").Inc()
		return nil, err
	}

	// A filled honeypot means a bot. Answer exactly like a real success so
	// the bot learns nothing, and send nothing.
	if sub.Honeypot != "" {
		metrics.HoneypotTriggers.WithLabelValues(string(ft)).Inc()
		logger.Warn("Honeypot triggered, dropping submission",
			zap.String("form_type", string(ft)),
			zap.String("client_ip", clientIP))
		return &models.SubmitResponse{
			Success:  true,
			FormType: string(ft),
			Emails:   models.EmailStatus{Notification: true, Confirmation: true},
		}, nil
	}

	locale := s.resolveLocale(sub.Locale)

	notification := mailer.BuildNotification(ft, fields,
		s.cfg.Email.FromAddress, s.cfg.Email.NotifyTo, clientIP, time.Now())
	confirmation := mailer.BuildConfirmation(ft, fields,
		s.cfg.Email.FromAddress, locale, s.cfg.Server.BaseURL)

	dispatch := s.dispatcher.Dispatch(ctx, notification, confirmation)

	metrics.LeadSubmissions.WithLabelValues(string(ft), "accepted").Inc()
	logger.Info("Lead submission processed",
		zap.String("form_type", string(ft)),
		zap.String("company", fields["company"]),
		zap.String("locale", locale),
		zap.Bool("notification_sent", dispatch.Notification.Success),
		zap.Bool("confirmation_sent", dispatch.Confirmation.Success))

	return &models.SubmitResponse{
		Success:  true,
		FormType: string(ft),
		Emails: models.EmailStatus{
			Notification: dispatch.Notification.Success,
			Confirmation: dispatch.Confirmation.Success,
		},
	}, nil
}

// checkCaptcha applies the v3 score policy. With no secret configured the
// check is skipped entirely (local development).
func (s *LeadService) checkCaptcha(ctx context.Context, token, clientIP string) error {
	if !s.verifier.Enabled() {
		return nil
	}

	if token == "" {
		metrics.CaptchaVerifications.WithLabelValues("missing").Inc()
		return apperrors.ErrVerificationMissing
	}

	outcome, err := s.verifier.Verify(ctx, token)
	if err != nil {
		metrics.CaptchaVerifications.WithLabelValues("error").Inc()
		logger.Error("Captcha verification failed", zap.Error(err), zap.String("client_ip", clientIP))
		return apperrors.ErrVerificationFailed
	}
	if !outcome.Success {
		metrics.CaptchaVerifications.WithLabelValues("failed").Inc()
		return apperrors.ErrVerificationFailed
	}

	switch {
	case outcome.Score < s.cfg.ReCAPTCHA.RejectBelow:
		metrics.CaptchaVerifications.WithLabelValues("rejected").Inc()
		logger.Warn("Captcha score below reject threshold",
			zap.Float64("score", outcome.Score),
			zap.String("client_ip", clientIP))
		return apperrors.ErrVerificationSuspicious
	case outcome.Score < s.cfg.ReCAPTCHA.SuspectBelow:
		metrics.CaptchaVerifications.WithLabelValues("suspect").Inc()
		logger.Warn("Captcha score in suspect range, admitting",
			zap.Float64("score", outcome.Score),
			zap.String("client_ip", clientIP))
	default:
		metrics.CaptchaVerifications.WithLabelValues("passed").Inc()
	}

	return nil
}

func (s *LeadService) resolveLocale(raw string) string {
	if raw == "fr" || raw == "en" {
		return raw
	}
	return s.cfg.Server.DefaultLocale
}
