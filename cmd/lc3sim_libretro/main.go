//go:build libretro

// Command lc3sim_libretro builds the libretro core:
//
//	go build -tags libretro -buildmode=c-shared -o lc3sim_libretro.so ./cmd/lc3sim_libretro
package main

import "C"

import (
	"github.com/user-none/lc3sim/lc3"
	"github.com/user-none/lc3sim/libretro"
)

func init() {
	libretro.RegisterFactory(lc3.NewFactory())
}

func main() {}
