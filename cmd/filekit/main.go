package main

import (
	"os"

	"github.com/filekit-go/filekit/cmd/filekit/command"
)

var version = "local"

func main() {
	if err := command.Execute(command.Options{Version: version, Out: os.Stdout}, nil); err != nil {
		os.Exit(1)
	}
}
