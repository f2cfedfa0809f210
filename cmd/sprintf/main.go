package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/bjaus/sprintf"
)

func main() {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		var pe *sprintf.ParseError
		if errors.As(err, &pe) {
			fmt.Fprintln(os.Stderr, pe.Caret())
		}
		log.Error().Err(err).Msg("sprintf failed")
		os.Exit(1)
	}
}
