// Package config loads the optional configuration file, holding default
// values for the command line.
package config

import (
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/go-faster/errors"
	"github.com/spf13/afero"
)

type Config struct {
	Combine CombineConfig `toml:"combine"`
	Log     LogConfig     `toml:"log"`
}

// CombineConfig holds defaults for the combine mode flags.
type CombineConfig struct {
	Submapper *int   `toml:"submapper"`
	Region    string `toml:"region"`
	Mirroring string `toml:"mirroring"`
}

type LogConfig struct {
	// Comma-separated list of modules, same syntax as the --log flag.
	Modules string `toml:"modules"`
}

const cfgFilename = "config.toml"

// DefaultPath returns the path of the configuration file in the user
// configuration directory.
func DefaultPath() (string, error) {
	cfgdir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(cfgdir, "mapper474", cfgFilename), nil
}

// Load decodes the configuration file at path.
func Load(fsys afero.Fs, path string) (Config, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer f.Close()

	var cfg Config
	md, err := toml.NewDecoder(f).Decode(&cfg)
	if err != nil {
		return Config{}, err
	}
	if undec := md.Undecoded(); len(undec) != 0 {
		return Config{}, errors.Errorf("unknown configuration key %q", undec[0].String())
	}
	return cfg, nil
}

// LoadDefault loads the configuration from the default path. A missing file
// gives an empty configuration.
func LoadDefault(fsys afero.Fs) (Config, error) {
	path, err := DefaultPath()
	if err != nil {
		return Config{}, nil
	}
	cfg, err := Load(fsys, path)
	if errors.Is(err, fs.ErrNotExist) {
		return Config{}, nil
	}
	return cfg, err
}

// SubmapperString returns the default submapper as a flag value, or an empty
// string if not set.
func (c *CombineConfig) SubmapperString() string {
	if c.Submapper == nil {
		return ""
	}
	return strconv.Itoa(*c.Submapper)
}
