package main

import (
	"os"

	"github.com/whatdidido/whatdidido/cmd/whatdidido/cli"
	"github.com/whatdidido/whatdidido/internal/providers"
)

func main() {
	providers.RegisterAll()
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
