package mailer

import (
	"context"

	"github.com/oksasatya/geoauth/pkg/helpers"
)

// Notifier delivers an HTML email to a recipient. Implementations either
// send directly or hand the message to the email worker via a queue.
type Notifier interface {
	Send(ctx context.Context, to, subject, html string) error
}

// DirectNotifier sends through Mailgun in-request.
type DirectNotifier struct {
	MG *Mailgun
}

func (n *DirectNotifier) Send(ctx context.Context, to, subject, html string) error {
	return n.MG.Send(ctx, to, subject, "", html)
}

// QueueNotifier publishes an EmailJob to RabbitMQ; cmd/email_worker consumes
// the queue and performs the Mailgun send.
type QueueNotifier struct {
	Pub *helpers.RabbitPublisher
}

func (n *QueueNotifier) Send(ctx context.Context, to, subject, html string) error {
	return n.Pub.PublishJSON(ctx, EmailJob{To: to, Subject: subject, HTML: html})
}

// NopNotifier drops all mail; used when MAIL_SEND_ENABLED=false.
type NopNotifier struct{}

func (NopNotifier) Send(ctx context.Context, to, subject, html string) error { return nil }
