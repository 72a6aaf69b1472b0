package counter

import (
	"github.com/google/wire"

	"github.com/weegigs/wee-counter-go/we"
)

type CounterService = we.EntityService[Counter]

func Loader(store we.EventStore) *we.EntityLoader[Counter] {
	renderer := we.Renderer[Counter]{Initial: NewCounter, Reducers: Reducers()}
	loader := we.EntityLoader[Counter]{Loader: store.Load, Renderer: &renderer}

	return &loader
}

func NewCounterService(store we.EventStore, options ...we.EntityServiceOption[Counter]) CounterService {
	loader := Loader(store)
	dispatcher := we.RoutedDispatcher[Counter]{Handlers: CommandHandlers(), Publish: store.Publish}

	return we.NewEntityService[Counter](loader, &dispatcher, options...)
}

func ProvideCounterService(store we.EventStore) CounterService {
	return NewCounterService(store)
}

var Service = wire.NewSet(ProvideCounterService)
