package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/connectfour/internal/config"
	"github.com/rocketscienceinc/connectfour/internal/connectfour"
	"github.com/rocketscienceinc/connectfour/internal/entity"
	"github.com/rocketscienceinc/connectfour/internal/repository"
	"github.com/rocketscienceinc/connectfour/internal/repository/storage"
	"github.com/rocketscienceinc/connectfour/internal/transport/console"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

var shutdownGrace = 2 * time.Second

// RunApp - runs a console session on stdin and stdout.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			logger.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	return Run(ctx, logger, conf, os.Stdin, os.Stdout)
}

// Run - plays one session reading moves from in and drawing to out until the players stop,
// the input closes or ctx is cancelled.
func Run(ctx context.Context, logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	sessionID := uuid.NewString()
	opts := []connectfour.Option{connectfour.WithSessionID(sessionID)}

	if conf.Redis.Enabled {
		redisAddrString := conf.Redis.GetRedisAddr()
		if redisAddrString == "" {
			return ErrAddrNotFound
		}

		redisStorage, err := storage.NewRedisStorage(ctx, redisAddrString)
		if err != nil {
			return fmt.Errorf("could not connect to redis storage: %w", err)
		}

		defer func() {
			if err = redisStorage.Close(); err != nil {
				log.Error("could not close redis storage", "error", err)
			}
		}()

		roundRepo := repository.NewRoundRepository(redisStorage.Connection, conf.Redis.Channel)
		opts = append(opts, connectfour.WithResultSink(roundRepo))
	}

	board := entity.NewBoard()
	controller := connectfour.NewGameController(
		logger,
		board,
		entity.NewPlayer("Player 1", board),
		entity.NewPlayer("Player 2", board),
		console.NewLineReader(in),
		console.NewRenderer(out, !conf.NoColor),
		opts...,
	)

	// the controller stays the only goroutine touching the board;
	// a prompt blocked on input is abandoned on shutdown
	gameErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting session", "session_id", sessionID)
		gameErrCh <- controller.Run(ctx)
	}()

	return waitForSession(ctx, log, gameErrCh)
}

// waitForSession - translates the controller result into the application result.
// After cancellation it waits up to shutdownGrace for the controller to return
// before the caller releases storage.
func waitForSession(ctx context.Context, log *slog.Logger, gameErrCh <-chan error) error {
	select {
	case err := <-gameErrCh:
		return sessionResult(log, err)
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
	}

	timer := time.NewTimer(shutdownGrace)
	defer timer.Stop()

	select {
	case err := <-gameErrCh:
		if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, context.Canceled) {
			log.Error("session failed during shutdown", "error", err)
		}
	case <-timer.C:
		log.Warn("session still waiting for input, abandoning it")
	}

	return nil
}

func sessionResult(log *slog.Logger, err error) error {
	switch {
	case err == nil:
		log.Info("Session ended")
		return nil
	case errors.Is(err, io.EOF):
		log.Info("Input closed, ending session")
		return nil
	case errors.Is(err, context.Canceled):
		log.Info("Application context canceled, shutting down")
		return nil
	default:
		return fmt.Errorf("session failed: %w", err)
	}
}
