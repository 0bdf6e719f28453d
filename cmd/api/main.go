package main

import (
	"os"

	"github.com/metinatakli/cinema-statistics/internal/app"
)

func main() {
	if err := app.Run(); err != nil {
		os.Exit(1)
	}
}
