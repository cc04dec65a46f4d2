package audit

import "time"

// EventType classifies the outcome of a send attempt.
type EventType string

const (
	// EventSendRejected records a request that failed validation.
	EventSendRejected EventType = "send.rejected"
	// EventSendSucceeded records a message accepted by the SMTP server.
	EventSendSucceeded EventType = "send.succeeded"
	// EventSendFailed records a delivery failure (connect, TLS, auth, or submit).
	EventSendFailed EventType = "send.failed"
)

// Event is a single audit record. Recipient addresses and SMTP credentials
// are deliberately not recorded; only the count and the target host are.
type Event struct {
	ID             string    `json:"id"`
	Type           EventType `json:"type"`
	Timestamp      time.Time `json:"timestamp"`
	PaymentID      int       `json:"paymentID,omitempty"`
	RecipientCount int       `json:"recipientCount"`
	SMTPHost       string    `json:"smtpHost,omitempty"`
	Detail         string    `json:"detail,omitempty"`
}
