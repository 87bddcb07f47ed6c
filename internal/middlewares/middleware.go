package middlewares

import (
	"log"
	"net/http"
)

type MiddlewareHandler struct {
	Logger *log.Logger
}

func NewMiddlewareHandler(logger *log.Logger) *MiddlewareHandler {
	return &MiddlewareHandler{Logger: logger}
}

func (mh *MiddlewareHandler) RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mh.Logger.Printf("Request: %s %s", r.Method, r.URL.Path)
		next.ServeHTTP(w, r)
	})
}
