package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type Config struct {
	LogLevel string         `mapstructure:"log_level"`
	Tokenize TokenizeConfig `mapstructure:"tokenize"`
}

type TokenizeConfig struct {
	Language          string   `mapstructure:"language"`
	Escape            bool     `mapstructure:"escape"`
	AggressiveHyphens bool     `mapstructure:"aggressive_hyphens"`
	ProtectedPatterns []string `mapstructure:"protected_patterns"`
}

type LoadOptions struct {
	Cmd        flagBinder
	ConfigFile string
	Defaults   Config
}

type flagBinder interface {
	Flags() *pflag.FlagSet
}

func DefaultConfig() Config {
	return Config{
		LogLevel: "info",
		Tokenize: TokenizeConfig{
			Language:          "en",
			Escape:            false,
			AggressiveHyphens: false,
			ProtectedPatterns: nil,
		},
	}
}

func RegisterFlags(fs *pflag.FlagSet, defaults Config) {
	fs.String("log-level", defaults.LogLevel, "Log level (debug|info|warn|error)")
	fs.StringP("language", "l", defaults.Tokenize.Language, "Language code (see 'mosestok languages')")
	fs.Bool("escape", defaults.Tokenize.Escape, "Escape markup-sensitive characters in the output")
	fs.Bool("aggressive-hyphens", defaults.Tokenize.AggressiveHyphens, "Split hyphens between alphanumerics into @-@ markers")
	fs.StringArray("protected-pattern", defaults.Tokenize.ProtectedPatterns, "Regex whose matches survive tokenization unsplit (repeatable)")
}

func Load(opts LoadOptions) (Config, error) {
	v := viper.New()

	setDefaults(v, opts.Defaults)
	if opts.Cmd != nil {
		if err := v.BindPFlags(opts.Cmd.Flags()); err != nil {
			return Config{}, fmt.Errorf("bind flags: %w", err)
		}
	}
	registerAliases(v)

	v.SetEnvPrefix("MOSESTOK")
	replacer := strings.NewReplacer("-", "_", ".", "_", "__", "_")
	v.SetEnvKeyReplacer(replacer)
	v.AutomaticEnv()

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	} else {
		v.SetConfigName("mosestok")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return Config{}, fmt.Errorf("read config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper, c Config) {
	v.SetDefault("log_level", c.LogLevel)
	v.SetDefault("tokenize.language", c.Tokenize.Language)
	v.SetDefault("tokenize.escape", c.Tokenize.Escape)
	v.SetDefault("tokenize.aggressive_hyphens", c.Tokenize.AggressiveHyphens)
	v.SetDefault("tokenize.protected_patterns", c.Tokenize.ProtectedPatterns)
}

func registerAliases(v *viper.Viper) {
	v.RegisterAlias("log_level", "log-level")
	v.RegisterAlias("tokenize.language", "language")
	v.RegisterAlias("tokenize.escape", "escape")
	v.RegisterAlias("tokenize.aggressive_hyphens", "aggressive-hyphens")
	v.RegisterAlias("tokenize.protected_patterns", "protected-pattern")
}
