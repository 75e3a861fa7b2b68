package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"biofx/internal/jsonutil"
)

// DefaultPath is looked up when no --config is given.
const DefaultPath = "biofx.json"

// Config holds settings that may also be given as flags. Flags win.
type Config struct {
	OutDir   string `json:"out_dir"`
	Format   string `json:"format"`
	LogLevel string `json:"log_level"`
	LogFile  string `json:"log_file"`
	Threads  int    `json:"threads"`
}

// Defaults returns the built-in settings.
func Defaults() Config {
	return Config{OutDir: "out", Format: "text", LogLevel: "info"}
}

// Load reads a JSON config from path. An empty path means DefaultPath, and a
// missing default file is not an error: the defaults are returned.
// Fields absent from the file keep their default values.
func Load(path string) (Config, error) {
	c := Defaults()
	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}
	f, err := os.Open(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return c, nil
		}
		return c, err
	}
	defer f.Close()
	if err := jsonutil.DecodeStrict(f, &c); err != nil {
		return c, fmt.Errorf("config %s: %w", path, err)
	}
	return c, nil
}
