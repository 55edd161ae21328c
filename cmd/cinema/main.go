package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/srgjo27/cineticket/internal/adapter/api"
	"github.com/srgjo27/cineticket/internal/adapter/payment"
	"github.com/srgjo27/cineticket/internal/adapter/repository/kvstore"
	"github.com/srgjo27/cineticket/internal/config"
	"github.com/srgjo27/cineticket/internal/core/domain"
	"github.com/srgjo27/cineticket/internal/core/ports"
	"github.com/srgjo27/cineticket/internal/core/services"
	"github.com/srgjo27/cineticket/internal/platform/logger"
)

func main() {
	_ = godotenv.Load() // best-effort
	cfg := config.FromEnv()
	logger.Setup(cfg.LogLevel, cfg.LogPretty)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	os.Exit(run(ctx, cfg, os.Args[1:], os.Stdout, os.Stderr))
}

func run(ctx context.Context, cfg config.Config, args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 || args[0] == "help" || args[0] == "-h" {
		usage(stdout)
		return 0
	}

	kv, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		log.Error().Err(err).Str("driver", cfg.StoreDriver).Msg("local store unavailable")
		fmt.Fprintln(stderr, "Local storage is unavailable:", err)
		return 1
	}
	defer func() {
		if err := closeStore(); err != nil {
			log.Warn().Err(err).Msg("failed to close local store")
		}
	}()

	a := newApp(stdout, cfg, &http.Client{Timeout: cfg.HTTPTimeout}, kv)

	cmd, ok := a.commands()[args[0]]
	if !ok {
		fmt.Fprintf(stderr, "unknown command %q\n\n", args[0])
		usage(stderr)
		return 2
	}
	if err := cmd.run(ctx, args[1:]); err != nil {
		log.Debug().Err(err).Str("command", args[0]).Msg("command failed")
		fmt.Fprintln(stderr, domain.UserMessage(err, cmd.notFound))
		return 1
	}
	return 0
}

type app struct {
	out io.Writer

	snapshots ports.SnapshotStore
	catalog   *services.CatalogService
	auth      *services.AuthService
	selection *services.SeatSelectionService
	payment   *services.PaymentService
	tickets   *services.TicketService
	ratings   *services.RatingService
}

func newApp(out io.Writer, cfg config.Config, httpClient *http.Client, kv ports.KeyValueStore) *app {
	sessions := kvstore.NewSessionStore(kv)
	snapshots := kvstore.NewSnapshotStore(kv)
	ratingStore := kvstore.NewRatingStore(kv)
	comments := kvstore.NewCommentLog(kv)

	client := api.New(cfg.APIURL, httpClient, sessions)

	catalog := services.NewCatalogService(client, client, client, client, cfg.CatalogTTL, nil)
	auth := services.NewAuthService(client, sessions, snapshots, ratingStore, comments, nil)

	return &app{
		out:       out,
		snapshots: snapshots,
		catalog:   catalog,
		auth:      auth,
		selection: services.NewSeatSelectionService(catalog, client, client, client, auth, nil),
		payment:   services.NewPaymentService(client, payment.NewDemoProcessor(), snapshots, nil),
		tickets:   services.NewTicketService(client, snapshots),
		ratings:   services.NewRatingService(auth, ratingStore, comments, nil),
	}
}
