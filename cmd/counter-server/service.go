package main

import (
	"net/http"

	"github.com/google/wire"

	"github.com/weegigs/wee-counter-go/connectors/wehttp"
	"github.com/weegigs/wee-counter-go/counter"
	"github.com/weegigs/wee-counter-go/stores/memory"
)

type Handler http.Handler

func NewHandler(service counter.CounterService) Handler {
	return withLogging(wehttp.NewHandler[counter.Counter](service, wehttp.OperationName[counter.Counter](serviceName)))
}

var Live = wire.NewSet(memory.Live, counter.Service, NewHandler)
