package middleware

import (
	"net/http"
	"strings"
)

// corsMaxAge is how long (seconds) a browser may cache a preflight answer.
const corsMaxAge = "86400"

// CORS returns middleware for one resource. Every response gets
// Access-Control-Allow-Origin: *, and an OPTIONS preflight is answered right
// here with 200, the resource's methods and an empty body, without reaching
// the router.
func CORS(methods ...string) func(http.Handler) http.Handler {
	allowMethods := strings.Join(append(methods[:len(methods):len(methods)], http.MethodOptions), ", ")

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			h.Set("Access-Control-Allow-Origin", "*")

			if r.Method == http.MethodOptions {
				h.Set("Access-Control-Allow-Methods", allowMethods)
				h.Set("Access-Control-Allow-Headers", "Content-Type")
				h.Set("Access-Control-Max-Age", corsMaxAge)
				w.WriteHeader(http.StatusOK)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
