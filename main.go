package main

import (
	"os"

	"github.com/loadanalysis/analysisrun/launcher"
)

func main() {
	os.Exit(launcher.Run(os.Args[1:]))
}
