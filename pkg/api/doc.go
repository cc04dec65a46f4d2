// Package api provides the HTTP server for the mail relay: gin engine
// setup, access logging, CORS, controller registration, and the liveness
// and metrics routes.
package api
