package main

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/mahdiidarabi/numberid/pkg/numberid"
)

// envPrefix prefixes environment overrides, e.g. NUMBERID_DATABASE.
const envPrefix = "NUMBERID"

// Configuration keys. Dashes in flag names become underscores.
const (
	keyModuli       = "moduli"
	keyDatabase     = "database"
	keyMaxLineBytes = "max_line_bytes"
)

// bindConfig layers flags over environment over the optional config file over
// defaults.
func bindConfig(v *viper.Viper, flags *pflag.FlagSet) error {
	defaults := numberid.DefaultConfig()
	v.SetDefault(keyModuli, defaults.ModuliPath)
	v.SetDefault(keyDatabase, defaults.DatabasePath)
	v.SetDefault(keyMaxLineBytes, defaults.MaxLineBytes)

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	for key, flag := range map[string]string{
		keyModuli:       "moduli",
		keyDatabase:     "database",
		keyMaxLineBytes: "max-line-bytes",
	} {
		f := flags.Lookup(flag)
		if f == nil {
			return fmt.Errorf("flag %s is not defined", flag)
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("failed to bind flag %s: %w", flag, err)
		}
	}
	return nil
}

// loadConfig reads the config file, if any, and resolves the classifier
// configuration.
func loadConfig(v *viper.Viper, configFile string, logger *zap.Logger) (numberid.Config, error) {
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return numberid.Config{}, fmt.Errorf("failed to read config file: %w", err)
		}
		logger.Debug("config file loaded", zap.String("path", v.ConfigFileUsed()))
	}

	cfg := numberid.Config{
		ModuliPath:   v.GetString(keyModuli),
		DatabasePath: v.GetString(keyDatabase),
		MaxLineBytes: v.GetInt(keyMaxLineBytes),
		Logger:       logger,
	}
	if cfg.MaxLineBytes <= 0 {
		return numberid.Config{}, fmt.Errorf("max line bytes must be positive, got %d", cfg.MaxLineBytes)
	}
	return cfg, nil
}

// newLogger logs to stderr: everything at --verbose, warnings otherwise.
func newLogger(verbose bool) (*zap.Logger, error) {
	config := zap.NewDevelopmentConfig()
	config.OutputPaths = []string{"stderr"}
	config.ErrorOutputPaths = []string{"stderr"}
	config.DisableStacktrace = true
	if !verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	}
	return config.Build()
}
