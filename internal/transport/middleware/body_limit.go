package middleware

import "net/http"

// MaxBodyBytes caps the request body at n bytes. Reads past the limit fail,
// which the JSON decoders report as a bad request. A non-positive n disables the cap.
func MaxBodyBytes(n int64) Middleware {
	return func(next http.Handler) http.Handler {
		if n <= 0 {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Body != nil {
				r.Body = http.MaxBytesReader(w, r.Body, n)
			}
			next.ServeHTTP(w, r)
		})
	}
}
