//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"
)

func live() Handler {
	panic(wire.Build(Live))
}
