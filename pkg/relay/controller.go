package relay

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/bookline/mail-relay/pkg/apiresponses"
	"github.com/bookline/mail-relay/pkg/audit"
	"github.com/bookline/mail-relay/pkg/mail"
	"github.com/bookline/mail-relay/pkg/metrics"
	"github.com/bookline/mail-relay/pkg/system"
)

// Controller serves the send-email endpoint.
type Controller struct {
	log    *zap.SugaredLogger
	sender mail.Sender
	audit  *audit.Service
	tracer trace.Tracer
}

func NewController(log *zap.SugaredLogger, sender mail.Sender, auditSvc *audit.Service) *Controller {
	return &Controller{
		log:    log.Named("relay"),
		sender: sender,
		audit:  auditSvc,
		tracer: otel.Tracer("mail-relay/relay"),
	}
}

func (ctrl *Controller) BasePath() string {
	return "/"
}

func (ctrl *Controller) Handlers() []gin.HandlerFunc {
	return nil
}

func (ctrl *Controller) Register(rg *gin.RouterGroup) error {
	rg.POST("send-email", ctrl.sendEmail)
	return nil
}

// sendEmail validates the request, assembles the message, and relays it in
// a single blocking attempt. The response is not written until the SMTP
// server has accepted or refused the message.
func (ctrl *Controller) sendEmail(c *gin.Context) {
	metrics.SendRequests.Inc()
	log := system.GetReqLogger(c, ctrl.log)

	// Anything unexpected during orchestration surfaces as a 500 with the
	// failure text in the body; nothing escapes to the transport layer.
	defer func() {
		if r := recover(); r != nil {
			log.Errorw("Unexpected failure during send", "panic", r)
			apiresponses.RespondUnexpected(c, r)
		}
	}()

	var req SendEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		metrics.SendRejected.WithLabelValues("malformed").Inc()
		log.Infow("Rejecting malformed send request", "error", err)
		apiresponses.RespondBadRequest(c, err.Error())
		return
	}

	if err := req.Validate(); err != nil {
		metrics.SendRejected.WithLabelValues("invalid").Inc()
		log.Infow("Rejecting invalid send request", "reason", err.Error())
		ctrl.audit.Record(c.Request.Context(), audit.Event{
			ID:             system.GetRelayID(c),
			Type:           audit.EventSendRejected,
			PaymentID:      req.PaymentID,
			RecipientCount: len(req.Recipients),
			Detail:         err.Error(),
		})
		apiresponses.RespondBadRequest(c, err.Error())
		return
	}

	settings := mail.Settings{
		Host:     req.EmailSettings.SMTPServer,
		Port:     req.EmailSettings.SMTPPort,
		Username: req.EmailSettings.SMTPUsername,
		Password: req.EmailSettings.SMTPPassword,
		FromName: req.EmailSettings.SMTPFromName,
	}
	subject := fmt.Sprintf("Order Confirmed - Payment ID: %d", req.PaymentID)

	ctx, span := ctrl.tracer.Start(c.Request.Context(), "relay.send",
		trace.WithAttributes(
			attribute.Int("relay.payment_id", req.PaymentID),
			attribute.Int("relay.recipient_count", len(req.Recipients)),
			attribute.String("relay.smtp_host", settings.Host),
		))
	defer span.End()

	err := ctrl.sender.Send(settings, req.Recipients, subject, req.HTMLPage)
	if err != nil {
		// The underlying cause stays server-side; callers get a fixed message.
		span.RecordError(err)
		span.SetStatus(codes.Error, "delivery failed")
		log.Errorw("Mail delivery failed", "host", settings.Host, "error", err)
		ctrl.audit.Record(ctx, audit.Event{
			ID:             system.GetRelayID(c),
			Type:           audit.EventSendFailed,
			PaymentID:      req.PaymentID,
			RecipientCount: len(req.Recipients),
			SMTPHost:       settings.Host,
			Detail:         err.Error(),
		})
		apiresponses.RespondDeliveryFailure(c)
		return
	}

	ctrl.audit.Record(ctx, audit.Event{
		ID:             system.GetRelayID(c),
		Type:           audit.EventSendSucceeded,
		PaymentID:      req.PaymentID,
		RecipientCount: len(req.Recipients),
		SMTPHost:       settings.Host,
	})
	c.JSON(http.StatusOK, EmailResponse{
		Message:   "Email sent successfully",
		SentTo:    req.Recipients,
		Timestamp: time.Now().Format(time.RFC3339),
	})
}
