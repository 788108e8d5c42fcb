package main

import (
	"auction-lab/contract"
	"auction-lab/internal"
	"auction-lab/livefeed"
	"auction-lab/projection"
	"auction-lab/repositories"
	"auction-lab/runtime"
	"auction-lab/runtime/workers"
	"auction-lab/services"
	"auction-lab/sink"
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/jonboulle/clockwork"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run initializes all components, manages the server lifecycle, and
// centralizes error reporting, so every defer (database close included)
// executes before the process exits.
func run() error {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := internal.NewLogger(config.LogLevel)
	clock := clockwork.NewRealClock()

	// 2. Database (BadgerDB)
	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).
		WithLoggingLevel(badger.WARNING))
	if err != nil {
		return fmt.Errorf("database opening failed: %w", err)
	}
	// Grant mutations commit per transaction; Close flushes what remains.
	defer func() {
		log.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	// 3. Repositories & entitlement services
	grantRepository := repositories.NewGrantRepository(db, log)
	winnerRepository := repositories.NewWinnerRepository(db, log)
	entitlements := services.NewEntitlementService(grantRepository, clock, log)
	admin := services.NewAdminService(entitlements, []byte(config.AdminSecret), log)

	// 4. Supervision & orchestration
	sup := workers.NewSupervisor(log, config.RestartInterval)
	registry := runtime.NewRegistry()

	orchestrator := runtime.NewOrchestrator(
		log, clock, sup, registry,
		config.TopN, config.BufferSize,
		config.SinkTimeout, config.WatchdogInterval, config.IdleSweepInterval,
	)

	// The live-gifting connector is deployment-specific and plugged here.
	// Without one the adapters keep retrying on their countdown, which is
	// harmless; the debug gift endpoint still exercises the full pipeline.
	feedSource := livefeed.SourceFunc(func(ctx context.Context, account string, _ contract.FeedHandler) (contract.FeedConnection, error) {
		return nil, fmt.Errorf("no live connector configured for %q", account)
	})

	rooms := runtime.NewRooms(log, clock, config.DefaultAccount, config.IdleThreshold,
		orchestrator.NewAdapterFactory(feedSource, config.ReconnectDelay, config.SwitchDelay))
	orchestrator.SetRooms(rooms)

	board := projection.NewBoard()
	orchestrator.AddSinks(board, sink.NewWinnerSink(winnerRepository, log))

	sup.Add(
		workers.NewExpirySweeper(log, clock, entitlements, config.ExpirySweepInterval),
		workers.NewHealthWorker(log, rooms, config.HealthInterval),
	)

	// 5. Context & signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 6. Start the engine
	if err = orchestrator.Start(ctx); err != nil {
		return fmt.Errorf("orchestrator failed to start: %w", err)
	}

	// Operator bootstrap: a short-lived admin token in the log beats
	// shipping a second credential distribution mechanism.
	if token, err := admin.MintToken("bootstrap", config.AuthTokenDuration); err == nil {
		log.Info("admin token minted", "token", token, "valid_for", config.AuthTokenDuration)
	}

	// 7. HTTP admin/debug surface
	address := fmt.Sprintf("%s:%d", config.Host, config.Port)
	server := &http.Server{
		Addr:    address,
		Handler: internal.NewServer(log, orchestrator, board, entitlements, admin, winnerRepository).Routes(),
	}

	errChan := make(chan error, 1)
	go func() {
		log.Info("Starting HTTP server", "address", address, "at", time.Now().UTC())
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	// 8. Wait for stop or error
	select {
	case <-ctx.Done():
		log.Info("Shutting down gracefully...")
	case err := <-errChan:
		return err
	}

	// 9. Final cleanup
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = server.Shutdown(shutdownCtx)
	orchestrator.Stop()
	log.Info("Program stopped cleanly")

	return nil
}
