// Package handler is the HTTP layer. It binds and validates requests, calls
// the services and writes their results as JSON.
package handler

import (
	"strconv"
	"time"

	"github.com/200406-java-react-usf/Abraham-Selenke-p0/internal/middleware"
	"github.com/200406-java-react-usf/Abraham-Selenke-p0/internal/server"
	"github.com/200406-java-react-usf/Abraham-Selenke-p0/internal/validation"
	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/integrations/nrpkgerrors"
	"github.com/newrelic/go-agent/v3/newrelic"
)

// Handler holds the dependencies shared by every handler.
type Handler struct {
	server *server.Server
}

func NewHandler(s *server.Server) Handler {
	return Handler{server: s}
}

// HandlerFunc is a typed endpoint receiving a bound and validated request.
type HandlerFunc[Req validation.Validatable, Res any] func(c echo.Context, req Req) (Res, error)

// Request constrains Req to a pointer to R so a fresh request value can be
// allocated per call.
type Request[R any] interface {
	*R
	validation.Validatable
}

// Handle wraps a typed endpoint with binding, validation, logging and
// tracing, and writes its result as JSON with status.
//
//	g.POST("", handler.Handle(h.Handler, h.AddNewUser, http.StatusCreated))
func Handle[R any, Req Request[R], Res any](h Handler, fn HandlerFunc[Req, Res], status int) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req Req = new(R)
		return handleRequest(c, req, fn, status)
	}
}

func handleRequest[Req validation.Validatable, Res any](c echo.Context, req Req, fn HandlerFunc[Req, Res], status int) error {
	start := time.Now()
	route := c.Path()

	txn := newrelic.FromContext(c.Request().Context())
	if txn != nil {
		txn.AddAttribute("handler.name", route)
	}

	logger := middleware.GetLogger(c).With().
		Str("operation", "handler").
		Str("route", route).
		Logger()

	logger.Debug().Msg("handling request")

	validationStart := time.Now()
	if err := validation.BindAndValidate(c, req); err != nil {
		validationDuration := time.Since(validationStart)

		logger.Warn().
			Err(err).
			Dur("validation_duration", validationDuration).
			Msg("request validation failed")

		if txn != nil {
			txn.AddAttribute("validation.status", "failed")
			txn.AddAttribute("validation.duration_ms", validationDuration.Milliseconds())
		}
		return err
	}
	validationDuration := time.Since(validationStart)

	if txn != nil {
		txn.AddAttribute("validation.status", "success")
		txn.AddAttribute("validation.duration_ms", validationDuration.Milliseconds())
	}

	handlerStart := time.Now()
	result, err := fn(c, req)
	handlerDuration := time.Since(handlerStart)

	if err != nil {
		logger.Debug().
			Err(err).
			Dur("handler_duration", handlerDuration).
			Msg("handler returned an error")

		if txn != nil {
			txn.NoticeError(nrpkgerrors.Wrap(err))
			txn.AddAttribute("handler.status", "error")
			txn.AddAttribute("handler.duration_ms", handlerDuration.Milliseconds())
		}
		return err
	}

	if txn != nil {
		txn.AddAttribute("handler.status", "success")
		txn.AddAttribute("handler.duration_ms", handlerDuration.Milliseconds())
		txn.AddAttribute("total.duration_ms", time.Since(start).Milliseconds())
	}

	logger.Debug().
		Dur("handler_duration", handlerDuration).
		Dur("total_duration", time.Since(start)).
		Msg("request completed")

	return c.JSON(status, result)
}

// IDRequest binds the :id path parameter. A value that is not an integer
// becomes 0, which the services reject as an invalid id.
type IDRequest struct {
	ID string `param:"id"`
}

func (r *IDRequest) Validate() error {
	return nil
}

func (r *IDRequest) Value() int64 {
	id, err := strconv.ParseInt(r.ID, 10, 64)
	if err != nil {
		return 0
	}
	return id
}

// ListRequest binds nothing; collection routes take no input.
type ListRequest struct{}

func (r *ListRequest) Validate() error {
	return nil
}

// DeleteRequest is the raw JSON object of a DELETE body, e.g.
// {"accountId": 4}.
type DeleteRequest map[string]any

func (r *DeleteRequest) Validate() error {
	return nil
}
