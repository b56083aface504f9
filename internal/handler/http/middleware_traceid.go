package http

import (
	"context"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/CaioMelo204/A4PM-Challenge-TechLead/internal/utils"
)

const traceIDHeader = "X-Trace-ID"

// withTraceID assigns every request a correlation identifier. An incoming
// X-Trace-ID header is honoured so that callers can propagate their own IDs;
// otherwise a fresh UUID is generated. The ID is attached to the
// context-scoped logger, stored in the request context for the response
// metadata block, and echoed back in the response header.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var traceID string
		if traceIDFromRequestHeader := r.Header.Get(traceIDHeader); traceIDFromRequestHeader != "" {
			traceID = traceIDFromRequestHeader
		} else {
			traceID = utils.NewRequestID()
		}

		l := h.logger.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("trace_id", traceID)
		})

		ctx = context.WithValue(ctx, utils.RequestIDCtxKey, traceID)
		r = r.WithContext(l.WithContext(ctx))

		w.Header().Set(traceIDHeader, traceID)
		next.ServeHTTP(w, r)
	})
}
