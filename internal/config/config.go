// Package config loads regionclust run settings.
//
// Precedence (highest to lowest):
//  1. command-line flags (applied by the caller)
//  2. environment variables prefixed REGIONCLUST_
//  3. the YAML config file
//  4. defaults
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"

	"github.com/TrevorS/regionclust"
)

// EnvPrefix prefixes every environment override, e.g.
// REGIONCLUST_CLUSTERING_TARGET -> clustering.target.
const EnvPrefix = "REGIONCLUST_"

const maxConfigFileSize = 1024 * 1024 // 1MB

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Config is the full set of run settings.
type Config struct {
	Input      Input      `koanf:"input"`
	Clustering Clustering `koanf:"clustering"`
	Output     Output     `koanf:"output"`
	Logging    Logging    `koanf:"logging"`
}

// Input lists the source files.
type Input struct {
	Sessions []string `koanf:"sessions" validate:"required,min=1,dive,required"`
	Names    string   `koanf:"names"`
	Centers  string   `koanf:"centers"`
}

// Clustering mirrors regionclust.Config.
type Clustering struct {
	Target  int    `koanf:"target" validate:"min=1"`
	Linkage string `koanf:"linkage" validate:"oneof=average single"`
	Workers int    `koanf:"workers" validate:"min=0"`
}

// Output controls what is written and where.
type Output struct {
	Dir    string `koanf:"dir" validate:"required"`
	Format string `koanf:"format" validate:"oneof=text toml"`
	Plots  bool   `koanf:"plots"`
}

// Logging selects level and encoder.
type Logging struct {
	Level  string `koanf:"level" validate:"oneof=debug info warn error"`
	Format string `koanf:"format" validate:"oneof=json console"`
}

// Default returns the settings used when nothing overrides them.
func Default() Config {
	return Config{
		Clustering: Clustering{
			Target:  regionclust.DefaultTargetClusters,
			Linkage: string(regionclust.LinkageAverage),
		},
		Output: Output{
			Dir:    "results",
			Format: "text",
			Plots:  true,
		},
		Logging: Logging{
			Level:  "info",
			Format: "console",
		},
	}
}

// applyDefaults fills zero-valued fields left after unmarshalling. Target
// is seeded before loading instead, since an explicit 0 must reach Validate.
func applyDefaults(cfg *Config) {
	def := Default()
	if cfg.Clustering.Linkage == "" {
		cfg.Clustering.Linkage = def.Clustering.Linkage
	}
	if cfg.Output.Dir == "" {
		cfg.Output.Dir = def.Output.Dir
	}
	if cfg.Output.Format == "" {
		cfg.Output.Format = def.Output.Format
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = def.Logging.Level
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = def.Logging.Format
	}
}

// envKey maps REGIONCLUST_SECTION_FIELD_NAME to section.field_name.
func envKey(s string) string {
	lower := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	parts := strings.SplitN(lower, "_", 2)
	if len(parts) == 1 {
		return lower
	}
	return parts[0] + "." + parts[1]
}

// Load reads the YAML file at path (skipped when path is empty), applies
// environment overrides and defaults, and returns the result unvalidated so
// that flag overrides can still be applied. Call Validate afterwards.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// Seeded keys have defaults a zero value cannot express.
	def := Default()
	seeds := map[string]any{
		"clustering.target": def.Clustering.Target,
		"output.plots":      def.Output.Plots,
	}
	for key, val := range seeds {
		if err := k.Set(key, val); err != nil {
			return nil, fmt.Errorf("config: default %s: %w", key, err)
		}
	}

	if path != "" {
		content, err := readConfigFile(path)
		if err != nil {
			return nil, err
		}
		if err := k.Load(rawbytes.Provider(content), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("config: environment: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	if sessions, ok := k.Get("input.sessions").(string); ok {
		// Environment values arrive as one string; accept a comma list.
		cfg.Input.Sessions = splitList(sessions)
	}

	applyDefaults(&cfg)
	return &cfg, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func readConfigFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("config: stat %s: %w", path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("config: %s is a directory", path)
	}
	if info.Size() > maxConfigFileSize {
		return nil, fmt.Errorf("config: %s exceeds %d bytes", path, maxConfigFileSize)
	}
	return io.ReadAll(f)
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks every field against its constraints.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, len(verrs))
			for i, fe := range verrs {
				msgs[i] = fmt.Sprintf("%s failed %q", fe.Namespace(), fe.Tag())
			}
			return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(msgs, "; "))
		}
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}

// ClusterConfig converts the clustering section into a regionclust.Config.
func (c *Config) ClusterConfig() (regionclust.Config, error) {
	linkage, err := regionclust.ParseLinkage(c.Clustering.Linkage)
	if err != nil {
		return regionclust.Config{}, err
	}
	return regionclust.Config{
		TargetClusters: c.Clustering.Target,
		Linkage:        linkage,
		Workers:        c.Clustering.Workers,
	}, nil
}
