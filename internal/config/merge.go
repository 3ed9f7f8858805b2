package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Top-level YAML config key names used for shallow merge.
const (
	keySeed    = "seed"
	keyDisplay = "display"
	keyOutput  = "output"
	keyLogging = "logging"
)

// knownTopLevelKeys lists the YAML keys that correspond to Config sections.
// Keys not in this list are silently ignored during merge.
//
//nolint:gochecknoglobals // Compile-time constant lookup table.
var knownTopLevelKeys = map[string]bool{
	keySeed:    true,
	keyDisplay: true,
	keyOutput:  true,
	keyLogging: true,
}

// ShallowMergeYAML loads a YAML file and merges its top-level keys onto
// the target Config. Keys present in the overlay replace entire sections
// in the target, with omitted fields taking their defaults. Keys absent in
// the overlay are left unchanged.
func ShallowMergeYAML(target *Config, overlayPath string) error {
	if target == nil {
		return errors.New("nil target *Config in ShallowMergeYAML")
	}

	data, err := os.ReadFile(overlayPath)
	if err != nil {
		return fmt.Errorf("reading overlay file %s: %w", overlayPath, err)
	}

	var overlay map[string]interface{}
	if err = yaml.Unmarshal(data, &overlay); err != nil {
		return fmt.Errorf("parsing overlay YAML from %s: %w", overlayPath, err)
	}

	// Empty or comment-only file: nothing to merge.
	if len(overlay) == 0 {
		return nil
	}

	for key, value := range overlay {
		if !knownTopLevelKeys[key] {
			continue
		}

		sectionBytes, marshalErr := yaml.Marshal(value)
		if marshalErr != nil {
			return fmt.Errorf("re-marshalling overlay section %q: %w", key, marshalErr)
		}

		if err = unmarshalSection(target, key, sectionBytes); err != nil {
			return fmt.Errorf("applying overlay section %q: %w", key, err)
		}
	}

	return nil
}

// unmarshalSection unmarshals raw YAML bytes onto the default value of the
// section named key and replaces that section of target with it. Fields the
// overlay omits therefore revert to their defaults, not to target's values.
func unmarshalSection(target *Config, key string, data []byte) error {
	defaults := Default()
	switch key {
	case keySeed:
		v := defaults.Seed
		if err := yaml.Unmarshal(data, &v); err != nil {
			return err
		}
		target.Seed = v
	case keyDisplay:
		v := defaults.Display
		if err := yaml.Unmarshal(data, &v); err != nil {
			return err
		}
		target.Display = v
	case keyOutput:
		v := defaults.Output
		if err := yaml.Unmarshal(data, &v); err != nil {
			return err
		}
		target.Output = v
	case keyLogging:
		v := defaults.Logging
		if err := yaml.Unmarshal(data, &v); err != nil {
			return err
		}
		target.Logging = v
	default:
		return fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	return nil
}
