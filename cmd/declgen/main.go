package main

import (
	"os"

	"github.com/funvibe/declgen/pkg/cli"
)

func main() {
	os.Exit(cli.Entry(os.Args[1:]))
}
