package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	SendRequests = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "mailrelay_send_requests_total",
		Help: "Total number of send-email requests received",
	})
	SendRejected = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "mailrelay_send_rejected_total",
		Help: "Total number of send-email requests rejected during validation",
	}, []string{"reason"})
	// Mail metrics
	MailSendSuccess = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "mailrelay_mail_send_success_total",
		Help: "Total number of successful mail sends",
	}, []string{"host"})
	MailSendFailure = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "mailrelay_mail_send_failure_total",
		Help: "Total number of failed mail sends",
	}, []string{"host"})
	AuditEventsWritten = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "mailrelay_audit_events_written_total",
		Help: "Total number of audit events written, by outcome",
	}, []string{"outcome"})
)

func init() {
	prometheus.MustRegister(SendRequests)
	prometheus.MustRegister(SendRejected)
	prometheus.MustRegister(MailSendSuccess)
	prometheus.MustRegister(MailSendFailure)
	prometheus.MustRegister(AuditEventsWritten)
}

// MetricsHandler returns an http.Handler exposing Prometheus metrics.
func MetricsHandler() http.Handler {
	return promhttp.Handler()
}
