// Package audit provides an optional audit trail for the mail relay,
// forwarding one event per send attempt to a Kafka topic. Auditing never
// blocks or fails the send path; it is disabled unless brokers are
// configured.
package audit
