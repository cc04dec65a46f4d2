// Package apiresponses provides the standardized error response helpers
// for the relay API. Every failure is reported to the caller as a JSON
// body with a single "detail" field.
package apiresponses
