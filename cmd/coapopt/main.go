package main

import (
	"os"

	"github.com/plgd-dev/coap-message/cmd/coapopt/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
