// Command midnightctl manages Midnight wallets from the command line.
//
// @title        midnightctl API
// @version      1.0
// @description  Wallet operations for the Midnight network.
// @BasePath     /
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/joho/godotenv"
)

func main() {
	// A missing .env file is fine; the environment may be set directly.
	_ = godotenv.Load()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	a := newApp(os.Stdout, os.Stderr)
	err := a.rootCmd().ExecuteContext(ctx)
	if err != nil {
		a.reportError(err)
	}
	a.close()
	cancel()
	if err != nil {
		os.Exit(1)
	}
}
