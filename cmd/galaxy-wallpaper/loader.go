package main

import (
	"fmt"

	"galaxy-wallpaper/internal/config"
	"galaxy-wallpaper/internal/galaxy"
	"galaxy-wallpaper/internal/utils"
)

// loadField reads the field from a snapshot when fieldPath is set and
// generates it from the config otherwise.
func loadField(cfg *config.Config, fieldPath string) (*galaxy.Field, error) {
	if fieldPath != "" {
		field, err := galaxy.LoadSnapshot(fieldPath)
		if err != nil {
			return nil, fmt.Errorf("load field %s: %w", fieldPath, err)
		}
		utils.Info("Field loaded from %s: %d particles", fieldPath, field.Count())
		return field, nil
	}

	rng := galaxy.NewRand(cfg.Galaxy.Seed)
	field := galaxy.Generate(cfg.GeneratorOptions(), rng)
	utils.Debug("Field generated: %d particles, %d arms, seed %d", field.Count(), cfg.Galaxy.Arms, cfg.Galaxy.Seed)
	return field, nil
}

func writeSnapshot(field *galaxy.Field, path string) error {
	if err := galaxy.SaveSnapshot(path, field); err != nil {
		return fmt.Errorf("write snapshot %s: %w", path, err)
	}
	utils.Info("Snapshot written to %s (%d particles)", path, field.Count())
	return nil
}
