package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"sandbox-core/internal/engine"
	"sandbox-core/internal/infrastructure/storage"
	"sandbox-core/internal/network"
	"sandbox-core/internal/server"
	"sandbox-core/internal/version"
	"sandbox-core/pkg/logger"
	"strconv"
	"syscall"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

func init() {
	logger.Init()
}

func main() {
	// 1. Флаги
	var (
		configPath string
		seed       string
		replayPath string
		record     bool
		showVer    bool
	)
	flag.StringVar(&configPath, "config", "", "Path to YAML config")
	flag.StringVar(&seed, "seed", "", "Master seed: number or word (empty for random)")
	flag.StringVar(&replayPath, "replay", "", "Path to .sbrp replay file to simulate")
	flag.BoolVar(&record, "record", false, "Record the session to replay.dir")
	flag.BoolVar(&showVer, "version", false, "Print build info and exit")
	flag.Parse()

	if showVer {
		fmt.Println(version.String())
		return
	}

	if seed != "" {
		// Флаг перекрывает файл и окружение
		_ = os.Setenv(engine.EnvPrefix+"_SEED", seed)
	}

	cfg, err := engine.LoadConfig(configPath)
	if err != nil {
		logger.Log.WithError(err).Fatal("Failed to load config")
	}
	if err := logger.Configure(cfg.Log.Level, cfg.Log.Format); err != nil {
		logger.Log.WithError(err).Fatal("Failed to configure logger")
	}
	cfg.Replay.Record = cfg.Replay.Record || record

	logger.Log.Info("Starting sandbox simulation...")
	logger.Log.Info(version.String())

	if replayPath != "" {
		if err := runReplay(cfg, replayPath); err != nil {
			logger.Log.WithError(err).Fatal("Replay failed")
		}
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		logger.Log.WithError(err).Fatal("Simulation stopped with error")
	}
	logger.Log.Info("Done.")
}

// newSimulation собирает симуляцию с демо-сценой
func newSimulation(cfg engine.Config) (*engine.Simulation, error) {
	sim := engine.NewSimulation(cfg)
	scene, err := engine.DemoScene(cfg, sim)
	if err != nil {
		return nil, err
	}
	if err := sim.Bootstrap(scene); err != nil {
		return nil, err
	}
	return sim, nil
}

func openStore(cfg engine.Config) (storage.Store, error) {
	if cfg.Storage.Driver == engine.StorageSQLite {
		return storage.OpenSQLite(cfg.Storage.Path)
	}
	return storage.NewMemoryStore(), nil
}

func run(ctx context.Context, cfg engine.Config) error {
	logger.Log.WithField("seed", cfg.Seed).Info("🎲 Master seed")

	sim, err := newSimulation(cfg)
	if err != nil {
		return err
	}

	// 2. Подписчики
	events := engine.NewEventLog(200)
	sim.Subscribe(events)

	metrics, err := engine.NewMetricsSink(engine.DefaultMeter(), sim)
	if err != nil {
		return err
	}
	sim.Subscribe(metrics)

	store, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Log.WithError(err).Warn("Failed to close store")
		}
	}()

	stats := engine.NewSessionStats(sim.PlayerID())
	if err := stats.Load(ctx, store); err != nil {
		return err
	}
	sim.Subscribe(stats)

	var recorder *engine.Recorder
	if cfg.Replay.Record {
		recorder = engine.NewRecorder(cfg.Seed, cfg.Tick.FixedStep)
		sim.Record(recorder)
	}

	hub := network.NewBroadcaster()
	sim.Subscribe(server.EventForwarder{Hub: hub})

	// 3. Цикл симуляции и сервер
	host := engine.NewHost(sim)
	host.OnSnapshot = hub.Broadcast

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return host.Run(gctx) })
	if cfg.Server.Enabled {
		srv := server.New(sim, hub, events, cfg.Server.Addr)
		g.Go(func() error { return srv.Run(gctx) })
	}
	runErr := g.Wait()

	logger.Log.Info("Shutting down...")

	// 4. Сохраняем статистику и запись даже после ошибки
	if err := stats.Save(context.Background(), store); err != nil {
		logger.Log.WithError(err).Warn("Failed to save session stats")
	}
	if recorder != nil {
		saveReplay(cfg, recorder)
	}

	logger.Log.WithFields(logrus.Fields{
		"ticks":  sim.TickCount(),
		"shots":  stats.Shots,
		"hits":   stats.Hits,
		"kills":  stats.Kills,
		"deaths": stats.Deaths,
	}).Info("Session finished")
	return runErr
}

func saveReplay(cfg engine.Config, recorder *engine.Recorder) {
	replays, err := storage.NewReplayService(cfg.Replay.Dir)
	if err != nil {
		logger.Log.WithError(err).Warn("Failed to open replay dir")
		return
	}
	path, err := replays.Save(recorder.Session())
	if err != nil {
		logger.Log.WithError(err).Warn("Failed to save replay")
		return
	}
	logger.Log.WithField("path", path).Info("💿 Replay saved")
}

// runReplay прогоняет запись на той же сцене и выходит
func runReplay(cfg engine.Config, path string) error {
	logger.Log.Info("💿 Mode: Replay Simulation")

	replays := &storage.ReplayService{}
	session, err := replays.Load(path)
	if err != nil {
		return err
	}

	// Сцена строится от сида записи
	cfg.Seed = session.Seed
	sim, err := newSimulation(cfg)
	if err != nil {
		return err
	}
	events := engine.NewEventLog(0)
	sim.Subscribe(events)
	stats := engine.NewSessionStats(sim.PlayerID())
	sim.Subscribe(stats)

	if err := sim.Replay(session); err != nil {
		return err
	}

	logger.Log.WithFields(logrus.Fields{
		"frames": len(session.Frames),
		"ticks":  sim.TickCount(),
		"seed":   strconv.FormatInt(session.Seed, 10),
		"shots":  stats.Shots,
		"kills":  stats.Kills,
	}).Info("Replay finished")
	return nil
}
