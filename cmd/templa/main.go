package main

import (
	"os"

	"github.com/templa-lang/templa/cmd/templa/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
