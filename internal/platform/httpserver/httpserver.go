// Package httpserver owns http.Server construction so timeouts are set in one place.
package httpserver

import (
	"net/http"
	"time"
)

// New returns an http.Server with bounded read/write timeouts.
// Write timeout exceeds the ledger timeout so slow Horizon submissions surface
// as domain errors rather than connection resets.
func New(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
}
