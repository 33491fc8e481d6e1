package main

import (
	"fmt"
	"os"

	"huntly/internal"
)

func main() {
	app := internal.NewApp()
	if err := app.Initialize(); err != nil {
		fmt.Fprintf(os.Stderr, "huntly: %v\n", err)
		os.Exit(1)
	}
	if err := app.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "huntly: %v\n", err)
		os.Exit(1)
	}
}
