// Package metrics defines Prometheus metrics for the mail relay, covering
// send requests, validation rejections, and SMTP delivery outcomes.
package metrics
