package main

import (
	"log"

	"github.com/eolymp/go-mfm/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		log.Fatal(err)
	}
}
