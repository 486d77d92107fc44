package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"pereval/internal/app"
)

// @title        FSTR Pereval API
// @version      1.0
// @description  Приём и просмотр заявок на перевалы для ФСТР.
// @BasePath     /
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "pereval:", err)
		os.Exit(1)
	}
}
