package main

import (
	"os"

	"github.com/zoobzio/transcode/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
