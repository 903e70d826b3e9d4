package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"roulette/internal/app"
	"syscall"
)

// exitInterrupted is the status for a session ended by Ctrl-C or SIGTERM
const exitInterrupted = 130

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	a := app.NewApp()

	// The prompter blocks on stdin and cannot see ctx, so a signal ends the
	// process from here instead of waiting for the round to finish.
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sig
		cancel()
		a.Close()
		os.Exit(exitInterrupted)
	}()

	if err := a.Run(ctx); err != nil {
		log.Printf("roulette: %v", err)
		cancel()
		os.Exit(1)
	}
}
