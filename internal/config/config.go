// Package config loads wiktparse's CLI/server settings, layering a YAML
// file, environment variables and command-line flags the same way
// leapsql's internal/cli/config does for its own CLI: file, then env,
// then flags, each overriding the last (github.com/knadh/koanf/v2).
package config

import (
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// EnvPrefix is the environment variable prefix recognized for overrides,
// e.g. WIKTPARSE_TITLEDB, WIKTPARSE_LANG.
const EnvPrefix = "WIKTPARSE_"

// DefaultLang is the edition language assumed when neither a config file,
// environment variable nor flag names one.
const DefaultLang = "en"

// Config holds the settings shared by the extract and serve subcommands.
type Config struct {
	TitleDB string `koanf:"titledb"`
	Lang    string `koanf:"lang"`
	Addr    string `koanf:"addr"`
}

// Load reads cfgFile (if it exists) as YAML, then layers WIKTPARSE_*
// environment variables, then any flags the caller explicitly set on
// flags, in that order of increasing precedence.
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(map[string]any{"lang": DefaultLang}, "."), nil); err != nil {
		return nil, err
	}

	if cfgFile != "" {
		if _, err := os.Stat(cfgFile); err == nil {
			if err := k.Load(file.Provider(cfgFile), yaml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return nil, err
	}

	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed {
				return "", nil
			}
			return f.Name, posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, err
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
