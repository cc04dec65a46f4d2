package mail

import (
	"fmt"
	"strconv"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"

	"github.com/bookline/mail-relay/pkg/metrics"
)

// hiddenRecipients is the literal To header of every relayed message. The
// real recipients travel only in the SMTP envelope so that no recipient
// sees the full distribution list.
const hiddenRecipients = "undisclosed-recipients:;"

// Settings is the SMTP account supplied by the caller with each request.
// The port arrives as text on the wire and is parsed at send time.
type Settings struct {
	Host     string
	Port     string
	Username string
	Password string
	FromName string
}

type Sender interface {
	Send(settings Settings, recipients []string, subject, body string) error
}

type sender struct {
	log *zap.SugaredLogger
}

func NewSender(log *zap.SugaredLogger) Sender {
	return &sender{log: log.Named("mail")}
}

// NewMessage builds the relay message: subject, display From, the
// placeholder To header, and the caller's HTML verbatim as the only body
// part. Envelope recipients are passed separately at submission.
func NewMessage(settings Settings, subject, body string) *gomail.Message {
	msg := gomail.NewMessage()
	msg.SetHeader("From", msg.FormatAddress(settings.Username, settings.FromName))
	msg.SetHeader("To", hiddenRecipients)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", body)
	return msg
}

// Send performs a single delivery attempt. Dial upgrades the connection via
// STARTTLS when the server advertises it and then authenticates with the
// request's credentials; the session is closed on every exit path. There
// are no retries, callers decide what a failure means.
func (s *sender) Send(settings Settings, recipients []string, subject, body string) error {
	port, err := strconv.Atoi(settings.Port)
	if err != nil {
		metrics.MailSendFailure.WithLabelValues(settings.Host).Inc()
		return fmt.Errorf("invalid SMTP port %q: %w", settings.Port, err)
	}

	msg := NewMessage(settings, subject, body)

	s.log.Infow("Opening SMTP session", "host", settings.Host, "port", port, "user", settings.Username)
	d := gomail.NewDialer(settings.Host, port, settings.Username, settings.Password)

	sc, err := d.Dial()
	if err != nil {
		metrics.MailSendFailure.WithLabelValues(settings.Host).Inc()
		return fmt.Errorf("connecting to %s:%d: %w", settings.Host, port, err)
	}
	defer func() {
		if cerr := sc.Close(); cerr != nil {
			s.log.Debugw("Closing SMTP session", "host", settings.Host, "error", cerr)
		}
	}()

	if err := sc.Send(settings.Username, recipients, msg); err != nil {
		metrics.MailSendFailure.WithLabelValues(settings.Host).Inc()
		return fmt.Errorf("submitting message to %s: %w", settings.Host, err)
	}

	metrics.MailSendSuccess.WithLabelValues(settings.Host).Inc()
	s.log.Infow("Mail submitted", "host", settings.Host, "receivers", len(recipients))
	return nil
}
