package main

import (
	"log/slog"
	"os"
)

// newLogger は構造化ログ用のslog.Loggerを作成する
func newLogger() *slog.Logger {
	h := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelWarn})
	return slog.New(h)
}
