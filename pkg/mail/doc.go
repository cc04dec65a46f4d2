// Package mail assembles booking-confirmation messages and relays them over
// SMTP using the account supplied with each request. Every send opens a
// fresh session: dial, STARTTLS, authenticate, submit, close.
package mail
