package relay

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSettings() EmailSettings {
	return EmailSettings{
		SMTPServer:   "smtp.example.com",
		SMTPPort:     "587",
		SMTPUsername: "booking@example.com",
		SMTPPassword: "secret",
		SMTPFromName: "Bookings Team",
	}
}

func TestSendEmailRequest_Validate(t *testing.T) {
	tests := []struct {
		name       string
		mutate     func(r *SendEmailRequest)
		wantReason string
	}{
		{
			name:   "valid request",
			mutate: func(r *SendEmailRequest) {},
		},
		{
			name:       "empty recipients",
			mutate:     func(r *SendEmailRequest) { r.Recipients = nil },
			wantReason: "At least one recipient is required",
		},
		{
			name:       "empty recipients slice",
			mutate:     func(r *SendEmailRequest) { r.Recipients = []string{} },
			wantReason: "At least one recipient is required",
		},
		{
			name:       "missing SMTP server",
			mutate:     func(r *SendEmailRequest) { r.EmailSettings.SMTPServer = "" },
			wantReason: "All email settings are required",
		},
		{
			name:       "missing SMTP port",
			mutate:     func(r *SendEmailRequest) { r.EmailSettings.SMTPPort = "" },
			wantReason: "All email settings are required",
		},
		{
			name:       "missing SMTP username",
			mutate:     func(r *SendEmailRequest) { r.EmailSettings.SMTPUsername = "" },
			wantReason: "All email settings are required",
		},
		{
			name:       "missing SMTP password",
			mutate:     func(r *SendEmailRequest) { r.EmailSettings.SMTPPassword = "" },
			wantReason: "All email settings are required",
		},
		{
			name:       "missing SMTP from name",
			mutate:     func(r *SendEmailRequest) { r.EmailSettings.SMTPFromName = "" },
			wantReason: "All email settings are required",
		},
		{
			name: "empty recipients takes precedence over missing settings",
			mutate: func(r *SendEmailRequest) {
				r.Recipients = nil
				r.EmailSettings = EmailSettings{}
			},
			wantReason: "At least one recipient is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := SendEmailRequest{
				Recipients:    []string{"guest@example.com"},
				PaymentID:     42,
				HTMLPage:      "<p>confirmed</p>",
				EmailSettings: validSettings(),
			}
			tt.mutate(&req)

			err := req.Validate()
			if tt.wantReason == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, IsInvalidRequest(err), "should be an InvalidRequestError")
			assert.Equal(t, tt.wantReason, err.Error())
		})
	}
}

func TestIsInvalidRequest(t *testing.T) {
	assert.True(t, IsInvalidRequest(&InvalidRequestError{Reason: "nope"}))
	assert.False(t, IsInvalidRequest(assert.AnError))
	assert.False(t, IsInvalidRequest(nil))
}
