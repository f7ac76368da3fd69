package server

import "net/http"

// rateLimit applies a global token bucket to every request. The dashboard
// is a single-user local tool; the limiter just keeps a misbehaving
// browser tab from spinning.
func (s *Server) rateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !s.limiter.Allow() {
			http.Error(w, `{"error":"rate limit exceeded"}`, http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}
