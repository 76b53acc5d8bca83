package main

import (
	"os"

	"github.com/jhoicas/gestion-patrimonial/internal/interfaces/cli"
)

func main() {
	os.Exit(cli.Run(cli.NewFixCommand))
}
