package main

import (
	"context"
	"os"

	"arbfix/internal/adapters/cli"
)

func main() {
	if err := cli.Execute(context.Background()); err != nil {
		os.Exit(1)
	}
}
