package relay

import "errors"

// InvalidRequestError marks a client-caused rejection. Reason is returned
// verbatim in the response body.
type InvalidRequestError struct {
	Reason string
}

func (e *InvalidRequestError) Error() string {
	return e.Reason
}

// IsInvalidRequest reports whether err is a validation rejection.
func IsInvalidRequest(err error) bool {
	var ire *InvalidRequestError
	return errors.As(err, &ire)
}

// Validate checks the request invariants that survive JSON binding:
// a non-empty recipient list and a complete set of SMTP settings. Address
// syntax is already enforced by the binding layer. Pure function of the
// request, no side effects.
func (r *SendEmailRequest) Validate() error {
	if len(r.Recipients) == 0 {
		return &InvalidRequestError{Reason: "At least one recipient is required"}
	}
	s := r.EmailSettings
	if s.SMTPServer == "" || s.SMTPPort == "" || s.SMTPUsername == "" || s.SMTPPassword == "" || s.SMTPFromName == "" {
		return &InvalidRequestError{Reason: "All email settings are required"}
	}
	return nil
}
