// SPDX-License-Identifier: MPL-2.0

package config

import "context"

type (
	// LoadOptions selects where configuration is read from.
	LoadOptions struct {
		// ConfigFilePath forces loading from a specific config file when set.
		ConfigFilePath string
		// ConfigDirPath replaces ConfigDir() in the lookup when set.
		ConfigDirPath string
	}

	// Provider loads configuration from explicit options.
	Provider interface {
		Load(ctx context.Context, opts LoadOptions) (*Config, error)
		// LoadWithPath is Load that also reports the file read ("" for defaults).
		LoadWithPath(ctx context.Context, opts LoadOptions) (*Config, string, error)
	}

	// cueFileProvider reads config.cue files through viper.
	cueFileProvider struct{}

	// staticProvider hands out a fixed, already validated configuration.
	staticProvider struct {
		cfg  Config
		path string
	}
)

// NewProvider creates a provider reading config.cue files.
func NewProvider() Provider {
	return cueFileProvider{}
}

// NewStaticProvider creates a provider that ignores LoadOptions and returns
// a copy of cfg, reporting path as its source. cfg is validated on every load.
func NewStaticProvider(cfg *Config, path string) Provider {
	return staticProvider{cfg: *cfg, path: path}
}

func (cueFileProvider) Load(ctx context.Context, opts LoadOptions) (*Config, error) {
	cfg, _, err := loadWithOptions(ctx, opts)
	return cfg, err
}

func (cueFileProvider) LoadWithPath(ctx context.Context, opts LoadOptions) (*Config, string, error) {
	return loadWithOptions(ctx, opts)
}

func (p staticProvider) Load(ctx context.Context, opts LoadOptions) (*Config, error) {
	cfg, _, err := p.LoadWithPath(ctx, opts)
	return cfg, err
}

func (p staticProvider) LoadWithPath(ctx context.Context, _ LoadOptions) (*Config, string, error) {
	if err := ctx.Err(); err != nil {
		return nil, "", err
	}
	if err := p.cfg.Validate(); err != nil {
		return nil, "", err
	}
	cfg := p.cfg
	cfg.Packages = append([]PackageEntry(nil), p.cfg.Packages...)
	cfg.Watch.Ignore = append([]string(nil), p.cfg.Watch.Ignore...)
	return &cfg, p.path, nil
}
