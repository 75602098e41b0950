// Package site serves the embedded landing page describing the API.
package site

import (
	"context"
	"net/http"
)

// Register attaches the landing page routes to mux.
func Register(_ context.Context, mux *http.ServeMux) {
	if mux == nil {
		panic("mux is nil")
	}
	mux.Handle("/", http.FileServer(FS()))
}
