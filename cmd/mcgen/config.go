package main

import (
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/cockroachdb/errors"

	"github.com/danmuck/mcwire/internal/gen"
)

const defaultConfigName = "mcgen.toml"

// Config is one mcgen invocation after file and flag overlay.
type Config struct {
	Suffix   string
	Packages []string
	// LogLevel is empty unless set by file or flag.
	LogLevel string
	DryRun   bool
}

// mcgen.toml key mapping.
type fileConfig struct {
	Suffix   string   `toml:"suffix"`
	Packages []string `toml:"packages"`
	LogLevel string   `toml:"log_level"`
	DryRun   bool     `toml:"dry_run"`
}

func defaultConfig() Config {
	return Config{Suffix: gen.DefaultSuffix}
}

// loadConfig overlays defined keys of the TOML file at path onto the
// defaults. Relative package paths resolve against the file's directory.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, errors.Wrap(err, "load mcgen config")
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, errors.Newf("load mcgen config: unknown key %q", undecoded[0].String())
	}

	if meta.IsDefined("suffix") {
		cfg.Suffix = strings.TrimSpace(raw.Suffix)
	}
	if meta.IsDefined("log_level") {
		cfg.LogLevel = strings.TrimSpace(raw.LogLevel)
	}
	if meta.IsDefined("dry_run") {
		cfg.DryRun = raw.DryRun
	}
	if meta.IsDefined("packages") {
		base := filepath.Dir(path)
		for _, p := range raw.Packages {
			p = strings.TrimSpace(p)
			if p == "" {
				continue
			}
			if !filepath.IsAbs(p) {
				p = filepath.Join(base, p)
			}
			cfg.Packages = append(cfg.Packages, p)
		}
	}

	if !strings.HasSuffix(cfg.Suffix, ".go") {
		return Config{}, errors.Newf("load mcgen config: suffix %q must end in .go", cfg.Suffix)
	}
	return cfg, nil
}
