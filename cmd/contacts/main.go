package main

import (
	"os"

	"github.com/rcliao/contacts/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
