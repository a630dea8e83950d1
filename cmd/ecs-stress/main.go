package main

import (
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"runtime"
	"time"

	"github.com/plus3/ecslite/ecs"
	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "", "Optional .toml or .yaml config file.")
	duration := flag.Duration("duration", 0, "The total duration the test should run for.")
	entityCount := flag.Int("entities", 0, "The initial number of entities to create.")
	systemCount := flag.Int("systems", 0, "The number of systems to register.")
	seed := flag.Uint64("seed", 0, "Random seed; 0 picks one.")
	logLevel := flag.String("log-level", "", "Log level: debug, info, warn or error.")
	flag.Parse()

	cfg, err := LoadConfig(*configPath)
	if err != nil {
		return err
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "duration":
			cfg.Duration = *duration
		case "entities":
			cfg.Entities = *entityCount
		case "systems":
			cfg.Systems = *systemCount
		case "seed":
			cfg.Seed = *seed
		case "log-level":
			cfg.Logging.Level = *logLevel
		}
	})
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if cfg.Seed == 0 {
		cfg.Seed = rand.Uint64()
	}

	log, err := newLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	log.Info("starting ECS stress test",
		zap.Duration("duration", cfg.Duration),
		zap.Int("entities", cfg.Entities),
		zap.Int("systems", cfg.Systems),
		zap.Uint64("seed", cfg.Seed),
	)

	rng := rand.New(rand.NewPCG(cfg.Seed, cfg.Seed))

	// 1. Setup world and scheduler
	world := ecs.NewWorld("stress")
	scheduler := ecs.NewScheduler(world,
		ecs.WithStats(),
		ecs.WithLogger(log),
		ecs.WithCapacity(cfg.Systems),
	)
	RegisterSystems(scheduler, cfg.Systems, cfg.MaxComponents, rng)

	// 2. Populate the world with initial entities
	for range cfg.Entities {
		SpawnRandomEntity(world, cfg.MaxComponents, rng)
	}
	log.Info("population complete", zap.Int("entities", world.EntityCount()))

	report := &Report{
		Duration: cfg.Duration,
		Entities: cfg.Entities,
		World:    world.Name(),
		UpdateTime: Stats{
			Samples: make([]time.Duration, 0, 1024),
		},
	}
	runtime.ReadMemStats(&report.MemStatsStart)

	// 3. Run the simulation loop
	scheduler.Initialize()

	startTime := time.Now()
	deadline := startTime.Add(cfg.Duration)
	for time.Now().Before(deadline) {
		updateStart := time.Now()
		scheduler.Execute()
		report.UpdateTime.Samples = append(report.UpdateTime.Samples, time.Since(updateStart))
		report.TotalUpdates++
	}

	report.TotalTime = time.Since(startTime)
	report.FinalEntities = world.EntityCount()
	report.AddSchedulerStats(scheduler.Stats(), 10)
	report.UpdateTime.Finalize()

	scheduler.Teardown()
	runtime.ReadMemStats(&report.MemStatsEnd)

	if world.EntityCount() != 0 || world.CheckForLeakedEntities() {
		log.Warn("world not empty after teardown", zap.Int("entities", world.EntityCount()))
	}
	log.Info("simulation finished", zap.Int64("updates", report.TotalUpdates))

	// 4. Generate Report to Console
	fmt.Println("\n\n--- Stress Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		return fmt.Errorf("generate report: %w", err)
	}
	fmt.Println("--- End of Report ---")
	return nil
}
