// Package config loads settings from .safespace.yaml, SAFESPACE_* environment
// variables and bound command-line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"github.com/idilsaglam/safespace/internal/companion"
	"github.com/idilsaglam/safespace/internal/player"
)

const (
	KeyJournal        = "journal"
	KeyLogLevel       = "log.level"
	KeyLogFile        = "log.file"
	KeyPlayerCommand  = "player.command"
	KeyPlayerVolume   = "player.volume"
	KeyCompanionDelay = "companion.delay"
	KeyTheme          = "theme"
)

// Config is the resolved application configuration.
type Config struct {
	// Journal is the optional JSON file the session is loaded from and saved
	// to. Empty keeps everything in memory.
	Journal        string
	LogLevel       string
	LogFile        string
	PlayerCommand  []string
	PlayerVolume   float64
	CompanionDelay time.Duration
	Theme          string
}

// Dir is the per-user directory for the default log file.
func Dir() (string, error) {
	home, err := homedir.Dir()
	if err != nil {
		return "", fmt.Errorf("home: %w", err)
	}
	return filepath.Join(home, ".safespace"), nil
}

// SetDefaults registers every default on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyJournal, "")
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFile, "~/.safespace/safespace.log")
	v.SetDefault(KeyPlayerCommand, strings.Join(player.DefaultCommand, " "))
	v.SetDefault(KeyPlayerVolume, player.DefaultVolume)
	v.SetDefault(KeyCompanionDelay, companion.DefaultDelay)
	v.SetDefault(KeyTheme, "classic")
}

// Load reads the config file (explicit path, or .safespace.yaml searched in
// $SAFESPACE_CONFIG_PATH, ./ and ~/.safespace) into v and resolves it.
// A missing config file is not an error.
func Load(v *viper.Viper, file string) (Config, error) {
	SetDefaults(v)
	v.SetEnvPrefix("SAFESPACE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if file != "" {
		p, err := homedir.Expand(file)
		if err != nil {
			return Config{}, fmt.Errorf("config path: %w", err)
		}
		v.SetConfigFile(p)
	} else {
		v.SetConfigName(".safespace")
		v.SetConfigType("yaml")
		if override := os.Getenv("SAFESPACE_CONFIG_PATH"); override != "" {
			v.AddConfigPath(override)
		}
		v.AddConfigPath("./")
		if dir, err := Dir(); err == nil {
			v.AddConfigPath(dir)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}
	return resolve(v)
}

func resolve(v *viper.Viper) (Config, error) {
	journal, err := expand(v.GetString(KeyJournal))
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", KeyJournal, err)
	}
	logFile, err := expand(v.GetString(KeyLogFile))
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", KeyLogFile, err)
	}
	delay := v.GetDuration(KeyCompanionDelay)
	if delay < 0 {
		return Config{}, fmt.Errorf("%s: negative delay %s", KeyCompanionDelay, delay)
	}
	vol := v.GetFloat64(KeyPlayerVolume)
	if vol < 0 || vol > 1 {
		return Config{}, fmt.Errorf("%s: %v is outside [0,1]", KeyPlayerVolume, vol)
	}
	return Config{
		Journal:        journal,
		LogLevel:       v.GetString(KeyLogLevel),
		LogFile:        logFile,
		PlayerCommand:  strings.Fields(v.GetString(KeyPlayerCommand)),
		PlayerVolume:   vol,
		CompanionDelay: delay,
		Theme:          v.GetString(KeyTheme),
	}, nil
}

func expand(p string) (string, error) {
	if p == "" {
		return "", nil
	}
	return homedir.Expand(p)
}
