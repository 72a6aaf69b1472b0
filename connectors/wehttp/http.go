// Package wehttp exposes an entity service over HTTP. Entities are read with
// GET /{type}/{key} and commands are posted as remote commands to the same
// path.
package wehttp

import (
	"errors"
	"io"
	"mime"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/goccy/go-json"

	"github.com/weegigs/wee-counter-go/we"
)

type HandlerOption[T any] func(service *httpService[T])

func Logger[T any](log *zerolog.Logger) HandlerOption[T] {
	return func(service *httpService[T]) {
		service.log = log
	}
}

// OperationName sets the span name recorded for each request.
func OperationName[T any](name string) HandlerOption[T] {
	return func(service *httpService[T]) {
		service.operation = name
	}
}

func NewHandler[T any](entityService we.EntityService[T], options ...HandlerOption[T]) http.Handler {
	service := &httpService[T]{
		controller: entityService,
		encoder:    we.NewResourceEncoder[T](),
		operation:  "we-http",
	}
	for _, option := range options {
		option(service)
	}
	if service.log == nil {
		service.log = &log.Logger
	}

	r := chi.NewRouter()

	r.Use(render.SetContentType(render.ContentTypeJSON))

	r.Method("GET", "/{type}/{key}", service.getResource())
	r.Method("POST", "/{type}/{key}", service.executeCommand())

	return WithTelemetry(r, service.operation)
}

type httpService[T any] struct {
	log        *zerolog.Logger
	controller we.EntityService[T]
	encoder    we.EntityEncoder[T]
	operation  string
}

func (service *httpService[T]) getResource() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := aggregateId(r)

		entity, err := service.controller.Load(r.Context(), id)
		if err != nil {
			service.log.Info().Err(err).Str("type", id.Type).Str("key", id.Key).Msg("failed to load resource")
			http.Error(w, "failed to load resource", http.StatusInternalServerError)
			return
		}

		if !entity.Initialized() {
			http.NotFound(w, r)
			return
		}

		if err := service.encoder.Encode(w, r, &entity); err != nil {
			service.log.Warn().Err(err).Str("type", id.Type).Str("key", id.Key).Msg("failed to encode resource")
		}
	}
}

func (service *httpService[T]) executeCommand() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := aggregateId(r)

		contentType := r.Header.Get("Content-type")
		mediaType, _, err := mime.ParseMediaType(contentType)
		if mediaType != "application/json" || err != nil {
			http.Error(w, "unsupported content type", http.StatusUnsupportedMediaType)
			return
		}

		body, err := io.ReadAll(r.Body)
		if err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}

		var command we.RemoteCommand
		if err := json.Unmarshal(body, &command); err != nil {
			service.log.Info().Err(err).Msg("failed to unmarshal command")
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}

		entity, err := service.controller.Execute(r.Context(), id, command)
		if err != nil {
			status := statusOf(err)
			service.log.Info().Err(err).Str("command", string(command.CommandName)).Int("status", status).Msg("failed to execute command")
			http.Error(w, http.StatusText(status), status)
			return
		}

		if err := service.encoder.Encode(w, r, &entity); err != nil {
			service.log.Warn().Err(err).Str("type", id.Type).Str("key", id.Key).Msg("failed to encode resource")
		}
	}
}

func aggregateId(r *http.Request) we.AggregateId {
	return we.AggregateId{Type: chi.URLParam(r, "type"), Key: chi.URLParam(r, "key")}
}

func statusOf(err error) int {
	var invalid we.InvalidCommandError
	var notFound we.CommandNotFoundError

	switch {
	case errors.As(err, &invalid), errors.As(err, &notFound):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
