package http_handlers

import "net/http"

type RootHandler struct{}

func NewRootHandler() *RootHandler { return &RootHandler{} }

// Greet answers the unauthenticated root probe existing clients use.
func (h *RootHandler) Greet(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("Hello!"))
}
