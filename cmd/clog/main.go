package main

import (
	"os"

	"github.com/csmith/clog/internal"
)

func main() {
	os.Exit(internal.Run(os.Args[1:], os.Stdout))
}
