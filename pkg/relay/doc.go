// Package relay implements the send-email endpoint: request validation,
// subject construction, and orchestration of the SMTP transport. Requests
// are stateless and independent; a request either fully succeeds or fully
// fails, with no retries and no per-recipient status.
package relay
