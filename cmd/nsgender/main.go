package main

import (
	"os"

	"github.com/bnema/nickserv-gender/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
