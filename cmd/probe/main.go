package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"sandbox-core/internal/agent"
	"sandbox-core/pkg/logger"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
)

func init() {
	logger.Init()
}

// Отладочный клиент: бьёт актёров запущенной симуляции через /ws
func main() {
	var (
		url     string
		kind    string
		amount  float64
		limit   int
		timeout time.Duration
	)
	flag.StringVar(&url, "url", "ws://localhost:8080/ws", "Sandbox WebSocket endpoint")
	flag.StringVar(&kind, "kind", "PEDESTRIAN", "Actor kind to damage")
	flag.Float64Var(&amount, "amount", 25, "Damage per command")
	flag.IntVar(&limit, "limit", 10, "Commands to send (0 for unlimited)")
	flag.DurationVar(&timeout, "timeout", time.Minute, "Give up after this long")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	probe := agent.NewProbe(url, kind, amount)
	probe.Limit = limit

	report, err := probe.Run(ctx)
	if err != nil {
		logger.Log.WithError(err).Fatal("Probe failed")
	}
	logger.Log.WithFields(logrus.Fields{
		"sent":   report.Sent,
		"errors": report.Errors,
		"kills":  report.Kills,
	}).Info("Done.")
}
