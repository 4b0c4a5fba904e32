package server

import (
	"net/http"
	"time"

	"log/slog"

	"github.com/google/uuid"
	"github.com/m-mizutani/livegit/pkg/domain/types"
	"github.com/m-mizutani/livegit/pkg/utils/logging"
)

const (
	// SessionHeader carries the session ID for clients that do not keep cookies.
	SessionHeader = "X-Livegit-Session"
	SessionCookie = "livegit_session"
)

func preProcess(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID, ctx := logging.CtxRequestID(r.Context())
		logger := logging.Default().With(slog.String("request_id", reqID.String()))

		ctx = logging.With(ctx, logger)

		lw := &statusCodeLogger{
			ResponseWriter: w,
			statusCode:     http.StatusOK, // Default to 200 if WriteHeader is not called
		}

		requestedAt := time.Now()
		next.ServeHTTP(lw, r.WithContext(ctx))

		logger.Info("http access",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("remote_addr", r.RemoteAddr),
			slog.Int("status_code", lw.statusCode),
			slog.Int64("content_length", r.ContentLength),
			slog.String("user_agent", r.UserAgent()),
			slog.String("referer", r.Referer()),
			slog.Duration("elapsed", time.Since(requestedAt)),
		)
	})
}

type statusCodeLogger struct {
	http.ResponseWriter
	statusCode int
}

func (x *statusCodeLogger) WriteHeader(code int) {
	x.statusCode = code
	x.ResponseWriter.WriteHeader(code)
}

// withSession binds the request to a dashboard session taken from the
// header or the cookie. A missing or malformed ID is replaced by a new one
// that is returned in both.
func withSession(cfg *config) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sessionID := sessionFromRequest(r)
			if sessionID == "" {
				sessionID = types.NewSessionID()
				http.SetCookie(w, &http.Cookie{
					Name:     SessionCookie,
					Value:    sessionID.String(),
					Path:     "/",
					HttpOnly: true,
					Secure:   cfg.secureCookie,
					SameSite: http.SameSiteLaxMode,
				})
			}
			w.Header().Set(SessionHeader, sessionID.String())

			ctx := logging.WithSessionID(r.Context(), sessionID)
			ctx = logging.With(ctx, logging.From(ctx).With(slog.Any("session", sessionID)))

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func sessionFromRequest(r *http.Request) types.SessionID {
	candidates := []string{r.Header.Get(SessionHeader)}
	if cookie, err := r.Cookie(SessionCookie); err == nil {
		candidates = append(candidates, cookie.Value)
	}

	for _, v := range candidates {
		if _, err := uuid.Parse(v); err == nil {
			return types.SessionID(v)
		}
	}
	return ""
}
