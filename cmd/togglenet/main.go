package main

import (
	log "github.com/sirupsen/logrus"
)

func main() {
	// Cobra handles parsing the arguments; errors surface here once.
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("togglenet: %v", err)
	}
}
