package cli

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	errs "github.com/matzehuels/tripgraph/pkg/errors"
)

// Config holds user defaults read from config.toml.
//
//	map = "~/maps/bay.map"
//	no_cache = false
//	cache_ttl = "72h"
//	heuristic = true
type Config struct {
	Map       string   `toml:"map"`
	NoCache   bool     `toml:"no_cache"`
	CacheTTL  duration `toml:"cache_ttl"`
	Heuristic *bool    `toml:"heuristic"`
}

// UseHeuristic reports whether A* should be used when no flag overrides it.
func (c Config) UseHeuristic() bool {
	return c.Heuristic == nil || *c.Heuristic
}

// duration decodes TOML strings such as "36h" into a time.Duration.
type duration time.Duration

func (d *duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	if v < 0 {
		return errs.New(errs.ErrCodeInvalidInput, "cache_ttl must not be negative")
	}
	*d = duration(v)
	return nil
}

// loadConfig reads the config file at path, or the default location when
// path is empty. A missing default file yields the zero Config; a missing
// explicit file is an error.
func loadConfig(path string) (Config, error) {
	var cfg Config

	explicit := path != ""
	if !explicit {
		dir, err := configDir()
		if err != nil {
			return cfg, nil
		}
		path = filepath.Join(dir, "config.toml")
	}

	if err := errs.ValidatePath(path); err != nil {
		return cfg, err
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return cfg, errs.Wrap(errs.ErrCodeFileNotFound, err, "config file %s", path)
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, errs.Wrap(errs.ErrCodeInvalidInput, err, "parse config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		printWarning("Ignoring unknown config keys: %s", strings.Join(keys, ", "))
	}

	cfg.Map = expandHome(cfg.Map)
	return cfg, nil
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}
