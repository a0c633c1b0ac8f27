package cli

import (
	"os"

	"github.com/BurntSushi/toml"
)

// configFile is looked up in the working directory. A missing file is fine;
// a malformed one is reported and ignored.
const configFile = "slate.toml"

// Config is optional per-project configuration. Flags override it.
type Config struct {
	Dump DumpConfig `toml:"dump"`
}

// DumpConfig sets defaults for the dump command.
type DumpConfig struct {
	NoColor      bool     `toml:"no_color"`
	Backgrounds  bool     `toml:"backgrounds"`
	IgnoreFields []string `toml:"ignore_fields"`
}

func loadConfig() (Config, error) {
	var cfg Config
	data, err := os.ReadFile(configFile)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
