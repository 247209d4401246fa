package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/mayarosales/cakecafe-backend/pkg/logger"
)

const requestIDHeader = "X-Request-Id"

// maxRequestIDLen caps inbound ids so a hostile header cannot bloat logs.
const maxRequestIDLen = 64

// RequestID tags every request with an id, honoring one supplied by the
// caller, and echoes it back on the response.
func RequestID(logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			reqID := r.Header.Get(requestIDHeader)
			if reqID == "" || len(reqID) > maxRequestIDLen {
				reqID = uuid.NewString()
			}
			w.Header().Set(requestIDHeader, reqID)

			ctx := r.Context()
			if logg != nil {
				ctx = logg.WithRequestID(ctx, reqID)
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
