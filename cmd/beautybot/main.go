// Command beautybot is a terminal skincare guide: pick a skin type, read the
// recommended products and routine, and set a reminder for it.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
)

func main() {
	// A .env next to the binary may carry TELEGRAM_BOT_TOKEN and friends.
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
