//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"
)

func live() GatewayHandler {
	panic(wire.Build(Live))
}
