package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/term"

	"fincalc/internal/config"
	"fincalc/internal/server"
	scenariostore "fincalc/internal/services/scenarios"
	"fincalc/internal/services/vault"
	"fincalc/internal/version"
)

func main() {
	cfg := config.Load()
	log := newLogger(cfg.Debug)

	log.Info().
		Str("version", version.Get().Version).
		Str("addr", cfg.ListenAddr).
		Msg("starting financial calculator server")

	store := scenariostore.NewStore(cfg.ScenarioCap)
	v := vault.New(cfg.VaultFile)

	if passphrase := vaultPassphrase(cfg); passphrase != "" {
		if err := v.Unlock(passphrase); err != nil {
			log.Fatal().Err(err).Msg("failed to unlock vault")
		}
		log.Info().Str("path", cfg.VaultFile).Msg("vault unlocked, exports will be encrypted")
	} else {
		log.Info().Str("path", cfg.VaultFile).Msg("no vault passphrase, exports will be plain JSON")
	}

	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           server.New(cfg, store, v, log).Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	case sig := <-stop:
		log.Info().Str("signal", sig.String()).Msg("shutting down")

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			log.Error().Err(err).Msg("shutdown incomplete")
		}
	}
}

// newLogger builds the root logger: console output in debug, JSON otherwise.
func newLogger(debug bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}

	var log zerolog.Logger
	if debug {
		log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	} else {
		log = zerolog.New(os.Stderr)
	}
	return log.Level(level).With().Timestamp().Logger()
}

// vaultPassphrase returns the configured passphrase, prompting on the
// terminal when stdin is a TTY and none was configured.
func vaultPassphrase(cfg *config.Config) string {
	if cfg.VaultPassphrase != "" {
		return cfg.VaultPassphrase
	}
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return ""
	}

	fmt.Fprint(os.Stderr, "Vault passphrase (empty for unencrypted exports): ")
	passphrase, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return ""
	}
	return string(passphrase)
}
