package middlewares

import (
	"net/http"
	"time"

	"mentor-service/internal/pkg/exceptions"
	"mentor-service/internal/pkg/utils"

	"github.com/go-chi/httprate"
)

// RateLimit allows MaxRequests per client IP in each window of
// MaxTimeRequestsPerSeconds seconds.
func (m *Middlewares) RateLimit() func(next http.Handler) http.Handler {
	window := time.Duration(m.InternalConfig.App.MaxTimeRequestsPerSeconds) * time.Second
	return httprate.Limit(
		m.InternalConfig.App.MaxRequests,
		window,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTooManyRequests(nil))
		}),
	)
}
