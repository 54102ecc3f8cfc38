package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/emicklei/go-restful/v3"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"
)

// Logger logs one line per request once the chain has run.
func Logger(req *restful.Request, resp *restful.Response, chain *restful.FilterChain) {
	start := time.Now()
	chain.ProcessFilter(req, resp)

	log.Info().
		Str("method", req.Request.Method).
		Str("path", req.Request.URL.Path).
		Int("status", resp.StatusCode()).
		Dur("duration", time.Since(start)).
		Msg("HTTP request")
}

// RecoverPanic turns a panicking handler into a 500 ErrorResponse.
func RecoverPanic(req *restful.Request, resp *restful.Response, chain *restful.FilterChain) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().
				Interface("panic", r).
				Str("path", req.Request.URL.Path).
				Bytes("stack", debug.Stack()).
				Msg("Recovered from panic")
			HandleError(resp, fmt.Errorf("panic: %v", r), http.StatusInternalServerError)
		}
	}()

	chain.ProcessFilter(req, resp)
}

// ConcurrencyLimit bounds in-flight requests. A request whose context ends
// while waiting for a slot gets a 503.
func ConcurrencyLimit(limit int64) restful.FilterFunction {
	if limit < 1 {
		limit = 1
	}
	sem := semaphore.NewWeighted(limit)

	return func(req *restful.Request, resp *restful.Response, chain *restful.FilterChain) {
		if err := sem.Acquire(req.Request.Context(), 1); err != nil {
			log.Warn().Err(err).Str("path", req.Request.URL.Path).Msg("Request dropped waiting for a worker")
			HandleErrorCode(resp, ErrServerBusy, http.StatusServiceUnavailable, CodeUnavailable)
			return
		}
		defer sem.Release(1)

		chain.ProcessFilter(req, resp)
	}
}
