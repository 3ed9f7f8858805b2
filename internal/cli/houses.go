package cli

import (
	"context"
	"fmt"

	"golang.org/x/text/language"

	"github.com/rshade/houselist/internal/config"
	"github.com/rshade/houselist/internal/currency"
	"github.com/rshade/houselist/internal/listing"
	"github.com/rshade/houselist/internal/logging"
	"github.com/rshade/houselist/internal/tui"
)

// seedSourceBuiltin names the built-in collection in logs.
const seedSourceBuiltin = "builtin"

// loadInitialHouses returns the initial collection: the --seed file when
// given, otherwise the configured seed file, otherwise the built-in houses.
func loadInitialHouses(ctx context.Context, seedFlag string) ([]listing.Record, error) {
	log := logging.FromContext(ctx)

	path := seedFlag
	if path == "" {
		path = config.GetGlobalConfig().Seed.File
	}

	if path == "" {
		houses := listing.DefaultHouses()
		log.Debug().Ctx(ctx).
			Str("component", "cli").
			Str("seed_source", seedSourceBuiltin).
			Int("record_count", len(houses)).
			Msg("using built-in houses")
		return houses, nil
	}

	houses, err := listing.LoadSeed(path)
	if err != nil {
		return nil, err
	}
	log.Debug().Ctx(ctx).
		Str("component", "cli").
		Str("seed_source", path).
		Int("record_count", len(houses)).
		Msg("loaded seed file")
	return houses, nil
}

// newFormatter builds the price formatter from the display configuration.
func newFormatter(cfg *config.Config) (*currency.Printer, error) {
	tag := language.AmericanEnglish
	if cfg.Display.Locale != "" {
		parsed, err := language.Parse(cfg.Display.Locale)
		if err != nil {
			return nil, fmt.Errorf("invalid display.locale %q: %w", cfg.Display.Locale, err)
		}
		tag = parsed
	}
	return currency.NewFormatter(cfg.Display.Currency, tag)
}

// newHouseList validates the configuration, loads the initial houses and
// builds the listing container.
func newHouseList(ctx context.Context, seedFlag string) (*tui.HouseList, error) {
	cfg := config.GetGlobalConfig()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	f, err := newFormatter(cfg)
	if err != nil {
		return nil, err
	}

	houses, err := loadInitialHouses(ctx, seedFlag)
	if err != nil {
		return nil, err
	}

	list := tui.NewHouseList(ctx, houses, f)
	list.SetTitle(cfg.Display.Title)
	return list, nil
}
