package main

import (
	"os"

	"github.com/camayank/jorss-gbo-taai-sub004/cmd/taxengine/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
