package app

import (
	"github.com/culturematch/culturematch/internal/command"
)

// DefaultMatchingConfig returns the default config for match generation.
func DefaultMatchingConfig() command.MatchingConfig {
	return command.MatchingConfig{
		MinCompatibilityScore: 50.0,
		MaxMatchesPerRun:      10,
		SharedItemsPerMatch:   5,
		ScoreConcurrency:      4,
	}
}

// DefaultUpdateTasteVectorConfig returns the default config for taste
// vector updates.
func DefaultUpdateTasteVectorConfig() command.UpdateTasteVectorConfig {
	return command.UpdateTasteVectorConfig{
		Dimension: 384,
	}
}
