// Package deal parses deal command flags and runs a single deal.
package deal

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/text/cases"

	"github.com/louisbranch/swampdeck/internal/core/card"
	coredeal "github.com/louisbranch/swampdeck/internal/core/deal"
	entrypoint "github.com/louisbranch/swampdeck/internal/platform/cmd"
	"github.com/louisbranch/swampdeck/internal/platform/config"
	apperrors "github.com/louisbranch/swampdeck/internal/platform/errors"
	"github.com/louisbranch/swampdeck/internal/platform/id"
	"github.com/louisbranch/swampdeck/internal/random"
)

const instrumentationName = "github.com/louisbranch/swampdeck/internal/cmd/deal"

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config holds deal command configuration.
type Config struct {
	Players     []string `env:"SWAMPDECK_PLAYERS"`
	PlayerCount int      `env:"SWAMPDECK_PLAYER_COUNT"`
	Deck        []string `env:"SWAMPDECK_DECK"`
	Seed        int64    `env:"SWAMPDECK_SEED"`
	MaxAttempts int      `env:"SWAMPDECK_MAX_ATTEMPTS" envDefault:"10000"`
	Format      string   `env:"SWAMPDECK_FORMAT"       envDefault:"text"`
	Verbose     bool     `env:"SWAMPDECK_VERBOSE"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}

	fs.Func("players", "comma-separated player names (overrides -player-count)", func(v string) error {
		cfg.Players = config.SplitList(v)
		return nil
	})
	fs.IntVar(&cfg.PlayerCount, "player-count", cfg.PlayerCount, "number of unnamed players")
	fs.Func("deck", "comma-separated card kinds to deal instead of the catalog deck", func(v string) error {
		cfg.Deck = config.SplitList(v)
		return nil
	})
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed for reproducibility (0 = random)")
	fs.IntVar(&cfg.MaxAttempts, "max-attempts", cfg.MaxAttempts, "attempts per hand size before dropping a card")
	fs.StringVar(&cfg.Format, "format", cfg.Format, "output format (text, json)")
	fs.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "verbose output")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run deals one hand per player and writes the result to out. Diagnostics go
// to errOut.
func Run(ctx context.Context, cfg Config, out io.Writer, errOut io.Writer) error {
	if out == nil {
		out = io.Discard
	}
	if errOut == nil {
		errOut = io.Discard
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	format := strings.ToLower(strings.TrimSpace(cfg.Format))
	if format != FormatText && format != FormatJSON {
		return apperrors.WithMetadata(apperrors.CodeOutputFormatInvalid, "unsupported output format",
			map[string]string{"format": cfg.Format})
	}
	players, err := buildPlayers(cfg)
	if err != nil {
		return err
	}
	kinds, err := parseDeck(cfg.Deck)
	if err != nil {
		return err
	}
	seed, err := random.ResolveSeed(cfg.Seed, nil)
	if err != nil {
		return apperrors.Wrap(apperrors.CodeSeedUnavailable, "resolve seed", err)
	}

	logger := log.New(errOut, "", 0)
	if cfg.Verbose {
		logger.Printf("Using seed: %d", seed)
	}

	ctx, span := otel.Tracer(instrumentationName).Start(ctx, "deal", trace.WithAttributes(
		attribute.Int("deal.players", len(players)),
		attribute.Int64("deal.seed", seed),
		attribute.Bool("deal.custom_deck", len(kinds) > 0),
	))
	defer span.End()

	reductions, err := otel.Meter(instrumentationName).Int64Counter("swampdeck.deal.hand_size_reduced",
		metric.WithDescription("Deals that settled below the largest possible hand size"))
	if err != nil {
		logger.Printf("create reduction counter: %v", err)
	}

	observer := coredeal.ObserverFunc(func(initial, final int) {
		logger.Printf("warning: hand size reduced from %d to %d cards per player", initial, final)
		span.AddEvent("hand size reduced", trace.WithAttributes(
			attribute.Int("deal.hand_size.initial", initial),
			attribute.Int("deal.hand_size.final", final),
		))
		if reductions != nil {
			reductions.Add(ctx, 1)
		}
	})

	dealer := coredeal.NewDealer(
		coredeal.WithSource(random.NewSeeded(seed)),
		coredeal.WithObserver(observer),
		coredeal.WithMaxAttempts(cfg.MaxAttempts),
	)
	report := dealer.DealReport(players, kinds)
	span.SetAttributes(
		attribute.Int("deal.pool_size", report.PoolSize),
		attribute.Int("deal.hand_size.initial", report.InitialHandSize),
		attribute.Int("deal.hand_size", report.HandSize),
		attribute.Int("deal.attempts", report.Attempts),
	)

	result := Result{
		Seed:            seed,
		PoolSize:        report.PoolSize,
		InitialHandSize: report.InitialHandSize,
		HandSize:        report.HandSize,
		Attempts:        report.Attempts,
		Players:         report.Players,
	}
	if err := render(out, format, result); err != nil {
		return apperrors.Wrap(apperrors.CodeOutputWrite, "write deal", err)
	}
	return nil
}

// buildPlayers turns names, or a bare count, into seats with fresh IDs.
func buildPlayers(cfg Config) ([]coredeal.Player, error) {
	names := append([]string(nil), cfg.Players...)
	if len(names) == 0 {
		if cfg.PlayerCount <= 0 {
			return nil, apperrors.WithMetadata(apperrors.CodePlayerCountInvalid, "at least one player is required",
				map[string]string{"count": strconv.Itoa(cfg.PlayerCount)})
		}
		names = make([]string, cfg.PlayerCount)
		for i := range names {
			names[i] = fmt.Sprintf("Player %d", i+1)
		}
	}

	fold := cases.Fold()
	seen := make(map[string]bool, len(names))
	for i, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			return nil, apperrors.WithMetadata(apperrors.CodePlayerNameEmpty, "player name is empty",
				map[string]string{"index": strconv.Itoa(i)})
		}
		key := fold.String(name)
		if seen[key] {
			return nil, apperrors.WithMetadata(apperrors.CodePlayerDuplicate, "duplicate player",
				map[string]string{"name": name})
		}
		seen[key] = true
		names[i] = name
	}

	ids, err := id.NewIDs(len(names))
	if err != nil {
		return nil, err
	}
	players := make([]coredeal.Player, len(names))
	for i, name := range names {
		players[i] = coredeal.Player{ID: ids[i], Name: name}
	}
	return players, nil
}

func parseDeck(raw []string) ([]card.Kind, error) {
	names := make([]string, 0, len(raw))
	for _, r := range raw {
		if strings.TrimSpace(r) != "" {
			names = append(names, r)
		}
	}
	kinds, err := card.ParseKinds(names)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeUnknownCardKind, "parse custom deck", err)
	}
	return kinds, nil
}
