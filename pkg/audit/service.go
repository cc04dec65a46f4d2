package audit

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/bookline/mail-relay/pkg/config"
)

// Service records audit events when a sink is configured and is a no-op
// otherwise.
type Service struct {
	sink Sink
	log  *zap.SugaredLogger
}

// NewService builds the audit service from configuration. Without brokers
// the service is disabled; Record becomes a no-op.
func NewService(cfg config.Audit, logger *zap.Logger) (*Service, error) {
	svc := &Service{log: logger.Sugar().Named("audit")}
	if !cfg.Enabled() {
		svc.log.Info("Audit trail disabled, no Kafka brokers configured")
		return svc, nil
	}
	sink, err := NewKafkaSink(cfg, logger)
	if err != nil {
		return nil, err
	}
	svc.sink = sink
	return svc, nil
}

func (s *Service) Enabled() bool {
	return s != nil && s.sink != nil
}

// Record stamps and writes the event. Failures are logged, never
// propagated; the audit trail must not affect the send path.
func (s *Service) Record(ctx context.Context, event Event) {
	if !s.Enabled() {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}
	if err := s.sink.Write(ctx, &event); err != nil {
		s.log.Warnw("Failed to write audit event", "sink", s.sink.Name(), "error", err)
	}
}

// Close flushes and releases the underlying sink.
func (s *Service) Close() error {
	if s.sink != nil {
		return s.sink.Close()
	}
	return nil
}
