package main

import (
	"context"
	"os"

	"weather-cli/internal/application/command"
)

func main() {
	os.Exit(command.NewWeatherCommand(os.Stdout, os.Stderr).Run(context.Background(), os.Args[1:]))
}
