package mailer

import (
	"context"
	"sync"
	"time"

	"github.com/tropicacao/leads-api/pkg/logger"
	"github.com/tropicacao/leads-api/pkg/metrics"
	"github.com/tropicacao/leads-api/pkg/retry"
	"go.uber.org/zap"
)

const sendTimeout = 30 * time.Second

// Dispatcher fans a submission out to the team notification and the
// submitter confirmation concurrently. Each channel carries its own retry
// budget and its outcome is data in the DispatchResult, so one channel
// failing never aborts the other or the request.
type Dispatcher struct {
	provider Provider
}

// DispatchResult holds the per-channel outcomes of one dispatch.
type DispatchResult struct {
	Notification SendResult
	Confirmation SendResult
}

func NewDispatcher(provider Provider) *Dispatcher {
	return &Dispatcher{provider: provider}
}

// Dispatch sends both messages concurrently and waits for both outcomes.
// A nil confirmation (submission without an email address) is reported as
// successful without a provider call.
func (d *Dispatcher) Dispatch(ctx context.Context, notification, confirmation *Message) DispatchResult {
	var result DispatchResult
	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		result.Notification = d.send(ctx, "notification", notification)
	}()

	if confirmation != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			result.Confirmation = d.send(ctx, "confirmation", confirmation)
		}()
	} else {
		result.Confirmation = SendResult{Success: true}
	}

	wg.Wait()
	return result
}

func (d *Dispatcher) send(ctx context.Context, kind string, msg *Message) SendResult {
	sendCtx, cancel := context.WithTimeout(ctx, sendTimeout)
	defer cancel()

	start := time.Now()

	res, err := retry.DoWithResult(sendCtx, retry.EmailConfig(), "email_send_"+kind, func() (*SendResult, error) {
		return d.provider.Send(sendCtx, msg)
	})

	status := "success"
	if err != nil {
		status = "error"
	}
	metrics.EmailSendTotal.WithLabelValues(kind, status).Inc()
	metrics.EmailSendDuration.WithLabelValues(kind, status).Observe(metrics.MeasureDuration(start))

	if err != nil {
		logger.Error("Email delivery failed",
			zap.String("kind", kind),
			zap.String("to", msg.To),
			zap.Error(err))
		return SendResult{Success: false, Error: err.Error()}
	}

	logger.Info("Email delivered",
		zap.String("kind", kind),
		zap.String("to", msg.To),
		zap.String("message_id", res.MessageID),
		zap.Duration("duration", time.Since(start)))

	return *res
}
