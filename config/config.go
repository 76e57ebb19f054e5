package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/AnkushinDaniil/doubleslit/entity/format"
	"github.com/AnkushinDaniil/doubleslit/entity/mode"
	"github.com/AnkushinDaniil/doubleslit/entity/parameters"
)

// EnvPrefix is prepended to every parameter's env tag.
const EnvPrefix = "APERTURE_"

// Default returns the reference lesson setup: 5-wide, 100-tall slits 40 apart
// on a 1001×1001 square grid.
func Default() *parameters.Parameters {
	return &parameters.Parameters{
		Mode:       mode.Aperture,
		Format:     format.HTML,
		Width:      5,
		Height:     100,
		Separation: 40,
		Resolution: 1001,
		Square:     true,
		Extent:     mode.Truncated,
		MaxPoints:  40000,
		PNGWidth:   8,
		PNGHeight:  8,
	}
}

// Load starts from Default, overlays the YAML file at path when path is not
// empty, then applies APERTURE_* environment variables.
func Load(path string) (*parameters.Parameters, error) {
	params := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		if err := decodeYAML(data, params); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}
	if err := ParseEnv(params); err != nil {
		return nil, err
	}
	return params, nil
}

func decodeYAML(data []byte, params *parameters.Parameters) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(params); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// ParseEnv loads APERTURE_* environment variables into target.
func ParseEnv(target any) error {
	if err := env.ParseWithOptions(target, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
