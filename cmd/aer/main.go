package main

import (
	"log"

	"github.com/wormiecorp/aer/pkg/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		log.Fatal(err)
	}
}
