package relay

// Wire types for the send-email endpoint. JSON field names, including the
// upper-case SMTP_* and HTML_PAGE keys, are part of the external contract
// and must not be renamed.

type CustomerDetails struct {
	Name  string `json:"name"`
	Email string `json:"email" binding:"omitempty,email"`
	Phone string `json:"phone"`
}

type BookingDetails struct {
	Room  string `json:"room"`
	Dates string `json:"dates"`
}

// EmailSettings is the SMTP account used for exactly one transient session.
// All five fields are mandatory; presence is checked in Validate so the
// rejection message stays stable.
type EmailSettings struct {
	SMTPServer   string `json:"SMTP_SERVER"`
	SMTPPort     string `json:"SMTP_PORT"`
	SMTPUsername string `json:"SMTP_USERNAME"`
	SMTPPassword string `json:"SMTP_PASSWORD"`
	SMTPFromName string `json:"SMTP_FROM_NAME"`
}

type SendEmailRequest struct {
	Recipients []string `json:"recipients" binding:"omitempty,dive,email"`
	PaymentID  int      `json:"payment_id"`
	// Timestamp is accepted but never used; the response carries its own.
	Timestamp       int64           `json:"timestamp"`
	CustomerDetails CustomerDetails `json:"customer_details"`
	BookingDetails  BookingDetails  `json:"booking_details"`
	HTMLPage        string          `json:"HTML_PAGE"`
	EmailSettings   EmailSettings   `json:"email_settings"`
}

type EmailResponse struct {
	Message   string   `json:"message"`
	SentTo    []string `json:"sent_to"`
	Timestamp string   `json:"timestamp"`
}
