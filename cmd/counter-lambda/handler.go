package main

import (
	"context"
	"errors"
	"mime"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/goccy/go-json"
	"github.com/google/wire"
	"github.com/rs/zerolog/log"

	"github.com/weegigs/wee-counter-go/counter"
	"github.com/weegigs/wee-counter-go/stores/memory"
	"github.com/weegigs/wee-counter-go/we"
)

type GatewayHandler = func(ctx context.Context, event events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error)

func status(code int) events.APIGatewayV2HTTPResponse {
	return events.APIGatewayV2HTTPResponse{StatusCode: code, Body: http.StatusText(code)}
}

func createHandler(service counter.CounterService) GatewayHandler {
	encoder := we.NewResourceEncoder[counter.Counter]()

	render := func(entity we.Entity[counter.Counter]) (events.APIGatewayV2HTTPResponse, error) {
		resource, err := encoder.Resource(&entity)
		if err != nil {
			return events.APIGatewayV2HTTPResponse{}, err
		}

		body, err := json.Marshal(resource)
		if err != nil {
			return events.APIGatewayV2HTTPResponse{}, err
		}

		return events.APIGatewayV2HTTPResponse{
			StatusCode: http.StatusOK,
			Headers:    map[string]string{"Content-Type": "application/json"},
			Body:       string(body),
		}, nil
	}

	return func(ctx context.Context, event events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
		key := event.PathParameters["key"]
		if key == "" {
			return status(http.StatusBadRequest), nil
		}

		id := counter.Id(key)

		switch event.RequestContext.HTTP.Method {
		case http.MethodGet:
			entity, err := service.Load(ctx, id)
			if err != nil {
				return events.APIGatewayV2HTTPResponse{}, err
			}

			if !entity.Initialized() {
				return status(http.StatusNotFound), nil
			}

			return render(entity)

		case http.MethodPost:
			mediaType, _, err := mime.ParseMediaType(event.Headers["content-type"])
			if err != nil || mediaType != "application/json" {
				return status(http.StatusUnsupportedMediaType), nil
			}

			var command we.RemoteCommand
			if err := json.Unmarshal([]byte(event.Body), &command); err != nil {
				return status(http.StatusBadRequest), nil
			}

			entity, err := service.Execute(ctx, id, command)
			if err != nil {
				var invalid we.InvalidCommandError
				var notFound we.CommandNotFoundError
				if errors.As(err, &invalid) || errors.As(err, &notFound) {
					log.Info().Err(err).Str("key", key).Msg("rejected command")
					return status(http.StatusBadRequest), nil
				}

				return events.APIGatewayV2HTTPResponse{}, err
			}

			return render(entity)

		default:
			return status(http.StatusMethodNotAllowed), nil
		}
	}
}

var Live = wire.NewSet(createHandler, counter.Service, memory.Live)
