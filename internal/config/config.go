// Package config loads srchash's configuration with layered precedence:
// defaults, then a global user config, then a project config, then CLI
// overrides.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tailscale/hujson"
)

// Config holds all configuration options consumed by cmd/srchash and the
// packages it wires together.
type Config struct {
	// SloppyTimeMacros disables the temporal macro scan (spec's
	// SLOPPY_TIME_MACROS flag). See srchash/internal/sourcehash.Config.
	SloppyTimeMacros bool `json:"sloppy_time_macros,omitempty"`

	// CompilerPath is substituted for every %compiler% token in a runner
	// command string.
	CompilerPath string `json:"compiler_path,omitempty"`

	// StatsLog is the path to the diagnostic stats-log sidecar. Empty
	// disables it.
	StatsLog string `json:"stats_log,omitempty"`
}

// Sources tracks which config files were loaded, for diagnostics.
type Sources struct {
	Global  string
	Project string
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		CompilerPath: "cc",
	}
}

// FileName is the default project config file name.
const FileName = ".srchash.json"

// CLIOverrides carries the subset of Config a caller wants to force
// regardless of what the config files say, plus whether each field was
// actually set (mirroring pflag's Changed()), since a zero value is
// otherwise indistinguishable from "not provided".
type CLIOverrides struct {
	Config

	CompilerPathSet     bool
	SloppyTimeMacrosSet bool
	StatsLogSet         bool
}

// getGlobalConfigPath returns the path to the global config file, using
// $XDG_CONFIG_HOME/srchash/config.json if set, otherwise
// ~/.config/srchash/config.json. Returns "" if neither can be determined.
func getGlobalConfigPath(env []string) string {
	for _, e := range env {
		if after, ok := strings.CutPrefix(e, "XDG_CONFIG_HOME="); ok {
			return filepath.Join(after, "srchash", "config.json")
		}
	}

	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "srchash", "config.json")
	}

	home, err := os.UserHomeDir()
	if err == nil {
		return filepath.Join(home, ".config", "srchash", "config.json")
	}

	return ""
}

// LoadConfig loads configuration with the following precedence (highest
// wins): defaults, global user config, project config file at workDir (or
// an explicit configPath), then cliOverrides.
func LoadConfig(workDir, configPath string, cliOverrides CLIOverrides, env []string) (Config, Sources, error) {
	cfg := DefaultConfig()

	var sources Sources

	globalCfg, globalPath, err := loadGlobalConfig(env)
	if err != nil {
		return Config{}, Sources{}, err
	}

	sources.Global = globalPath
	cfg = mergeConfig(cfg, globalCfg)

	projectCfg, projectPath, err := loadProjectConfig(workDir, configPath)
	if err != nil {
		return Config{}, Sources{}, err
	}

	sources.Project = projectPath
	cfg = mergeConfig(cfg, projectCfg)

	if cliOverrides.CompilerPathSet {
		cfg.CompilerPath = cliOverrides.CompilerPath
	}

	if cliOverrides.SloppyTimeMacrosSet {
		cfg.SloppyTimeMacros = cliOverrides.SloppyTimeMacros
	}

	if cliOverrides.StatsLogSet {
		cfg.StatsLog = cliOverrides.StatsLog
	}

	if err := validateConfig(cfg); err != nil {
		return Config{}, Sources{}, err
	}

	return cfg, sources, nil
}

func loadGlobalConfig(env []string) (Config, string, error) {
	path := getGlobalConfigPath(env)
	if path == "" {
		return Config{}, "", nil
	}

	cfg, loaded, err := loadConfigFile(path, false)
	if err != nil {
		return Config{}, "", err
	}

	if !loaded {
		return Config{}, "", nil
	}

	return cfg, path, nil
}

func loadProjectConfig(workDir, configPath string) (Config, string, error) {
	var cfgFile string

	var mustExist bool

	if configPath != "" {
		cfgFile = configPath
		if !filepath.IsAbs(cfgFile) {
			cfgFile = filepath.Join(workDir, cfgFile)
		}

		mustExist = true

		if _, statErr := os.Stat(cfgFile); statErr != nil {
			return Config{}, "", fmt.Errorf("%w: %s", errConfigFileNotFound, configPath)
		}
	} else {
		cfgFile = filepath.Join(workDir, FileName)
		mustExist = false
	}

	cfg, loaded, err := loadConfigFile(cfgFile, mustExist)
	if err != nil {
		return Config{}, "", err
	}

	if !loaded {
		return Config{}, "", nil
	}

	return cfg, cfgFile, nil
}

// loadConfigFile loads a JSONC config file. If mustExist is false, a
// missing file returns a zero Config with loaded == false instead of an
// error.
func loadConfigFile(path string, mustExist bool) (Config, bool, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is caller-controlled config location
	if err != nil {
		if os.IsNotExist(err) && !mustExist {
			return Config{}, false, nil
		}

		if mustExist {
			return Config{}, false, fmt.Errorf("%w: %s", errConfigFileRead, path)
		}

		return Config{}, false, nil
	}

	cfg, parseErr := parseConfig(data)
	if parseErr != nil {
		return Config{}, false, fmt.Errorf("%w %s: %w", errConfigInvalid, path, parseErr)
	}

	return cfg, true, nil
}

func parseConfig(data []byte) (Config, error) {
	standardized, err := hujson.Standardize(data)
	if err != nil {
		return Config{}, fmt.Errorf("invalid JSONC: %w", err)
	}

	var cfg Config

	if err := json.Unmarshal(standardized, &cfg); err != nil {
		return Config{}, fmt.Errorf("invalid JSON: %w", err)
	}

	return cfg, nil
}

func mergeConfig(base, overlay Config) Config {
	if overlay.SloppyTimeMacros {
		base.SloppyTimeMacros = true
	}

	if overlay.CompilerPath != "" {
		base.CompilerPath = overlay.CompilerPath
	}

	if overlay.StatsLog != "" {
		base.StatsLog = overlay.StatsLog
	}

	return base
}

func validateConfig(cfg Config) error {
	if cfg.CompilerPath == compilerPlaceholder {
		return errCompilerPathIsPlaceholder
	}

	return nil
}

// FormatConfig returns cfg as formatted JSON, for a diagnostics subcommand.
func FormatConfig(cfg Config) (string, error) {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to format config: %w", err)
	}

	return string(data), nil
}
