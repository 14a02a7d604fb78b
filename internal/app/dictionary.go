package app

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/6o6p/morphology"
	"github.com/6o6p/morphology/internal/config"
)

// LoadMorpher indexes the configured dictionary and logs how long it took.
func LoadMorpher(logger *slog.Logger, cfg config.DictionaryConfig) (*morphology.Morpher, morphology.BuildStats, error) {
	logger.Info("loading dictionary", slog.String("path", cfg.Path), slog.String("policy", cfg.MatchPolicy))

	start := time.Now()
	index, stats, err := morphology.LoadFile(cfg.Path, cfg.BuildOptions()...)
	if err != nil {
		return nil, stats, fmt.Errorf("load dictionary: %w", err)
	}

	logger.Info("dictionary loaded",
		slog.Duration("took", time.Since(start)),
		slog.Int("lines", stats.Lines),
		slog.Int("forms", stats.Forms),
		slog.Int("lemmas", stats.Lemmas),
	)
	return morphology.New(index), stats, nil
}
