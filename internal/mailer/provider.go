package mailer

import "context"

// Message is one outbound email.
type Message struct {
	From    string
	To      string
	ReplyTo string
	Subject string
	HTML    string
	Text    string
	Tags    []string
}

// SendResult is the outcome of one delivery attempt chain. Delivery failure
// is recorded as data, never as a request-fatal error.
type SendResult struct {
	Success   bool
	MessageID string
	Error     string
}

// Provider abstracts the transactional email service.
type Provider interface {
	Send(ctx context.Context, msg *Message) (*SendResult, error)
}
