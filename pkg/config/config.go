/*
Package config manages TOML config for wordsolve.
*/
package config

import (
	"os"

	"github.com/bastiangx/wordsolve/internal/utils"
	"github.com/bastiangx/wordsolve/pkg/solver"
	"github.com/charmbracelet/log"
)

// Config holds the entire config structure
type Config struct {
	Server ServerConfig `toml:"server"`
	Dict   DictConfig   `toml:"dict"`
	Solver SolverConfig `toml:"solver"`
	CLI    CliConfig    `toml:"cli"`
}

// ServerConfig has IPC server options.
type ServerConfig struct {
	MaxInput  int  `toml:"max_input"`
	LogTiming bool `toml:"log_timing"`
}

// DictConfig says where the word list comes from and whether its bytes are
// cached.
type DictConfig struct {
	WordList     string `toml:"word_list"`
	CacheDir     string `toml:"cache_dir"`
	CacheEnabled bool   `toml:"cache_enabled"`
}

// SolverConfig tunes the solver.
type SolverConfig struct {
	MemoSize    int  `toml:"memo_size"`
	MaxBlanks   int  `toml:"max_blanks"`
	SortResults bool `toml:"sort_results"`
}

// CliConfig holds cli interface options.
type CliConfig struct {
	DefaultSearchType string `toml:"default_search_type"`
	ShowBlanks        bool   `toml:"show_blanks"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			MaxInput:  32,
			LogTiming: false,
		},
		Dict: DictConfig{
			CacheEnabled: true,
		},
		Solver: SolverConfig{
			MemoSize:    solver.DefaultMemoSize,
			MaxBlanks:   solver.MaxBlanks,
			SortResults: true,
		},
		CLI: CliConfig{
			DefaultSearchType: string(solver.SearchAnagram),
			ShowBlanks:        true,
		},
	}
}

// SolverOptions converts the solver section into solver.Options.
func (c *Config) SolverOptions() solver.Options {
	return solver.Options{
		MemoSize:    c.Solver.MemoSize,
		MaxBlanks:   c.Solver.MaxBlanks,
		SortResults: c.Solver.SortResults,
	}
}

// normalize pulls out-of-range values back to something usable.
func (c *Config) normalize() {
	if c.Solver.MaxBlanks <= 0 || c.Solver.MaxBlanks > solver.MaxBlanks {
		c.Solver.MaxBlanks = solver.MaxBlanks
	}
	if c.Solver.MemoSize <= 0 {
		c.Solver.MemoSize = solver.DefaultMemoSize
	}
	if c.Server.MaxInput < 0 {
		c.Server.MaxInput = 0
	}
	if _, ok := solver.ParseSearchType(c.CLI.DefaultSearchType); !ok {
		log.Warnf("Unknown default_search_type %q, using anagram", c.CLI.DefaultSearchType)
		c.CLI.DefaultSearchType = string(solver.SearchAnagram)
	}
}

// LoadConfigWithPriority loads config with priority:
// 1. Custom path from --config flag
// 2. Default path: [UserConfigDir]/wordsolve/config.toml
// 3. Builtin defaults
func LoadConfigWithPriority(customConfigPath string, resolver *utils.PathResolver) (*Config, string, error) {
	if customConfigPath != "" {
		if _, statErr := os.Stat(customConfigPath); statErr == nil {
			config, err := LoadConfig(customConfigPath)
			if err != nil {
				log.Warnf("Failed to load custom config from %s: %v. Trying default path...", customConfigPath, err)
			} else {
				log.Debugf("Loaded config from custom path: %s", customConfigPath)
				return config, customConfigPath, nil
			}
		} else {
			log.Warnf("Custom config file not found at %s: %v. Trying default path...", customConfigPath, statErr)
		}
	}
	if resolver == nil {
		log.Warn("No path resolver available. Using built-in defaults...")
		return DefaultConfig(), "", nil
	}
	defaultPath, err := resolver.GetConfigPath("config.toml")
	if err != nil {
		log.Warnf("Failed to determine default config path: %v. Using built-in defaults...", err)
		return DefaultConfig(), "", nil
	}

	config, err := InitConfig(defaultPath)
	if err != nil {
		log.Warnf("Failed to load/create config at default path %s: %v. Using builtin defaults...", defaultPath, err)
		return DefaultConfig(), "", nil
	}
	log.Debugf("Loaded config from default path: %s", defaultPath)
	return config, defaultPath, nil
}

// InitConfig loads config from file or creates default if missing
func InitConfig(configPath string) (*Config, error) {
	if !utils.FileExists(configPath) {
		config := DefaultConfig()
		if err := SaveConfig(config, configPath); err != nil {
			log.Warnf("Failed to create default config file at %s: %v. Using built-in defaults...", configPath, err)
			return DefaultConfig(), nil
		}
		log.Debugf("Created default config file at: %s", configPath)
		return config, nil
	}
	return LoadConfig(configPath)
}

// LoadConfig loads from a TOML file. When a value has the wrong type the rest
// of the file is still read key by key.
func LoadConfig(configPath string) (*Config, error) {
	config := DefaultConfig()
	unknown, err := utils.DecodeTOMLFile(configPath, config)
	if err != nil {
		log.Warnf("Config %s did not parse cleanly, attempting partial recovery: %v", configPath, err)
		return tryPartialParse(configPath)
	}
	for _, key := range unknown {
		log.Warnf("Unknown config key %q in %s", key, configPath)
	}
	config.normalize()
	return config, nil
}

// tryPartialParse salvages every well-typed key of a file that failed the
// strict decode.
func tryPartialParse(configPath string) (*Config, error) {
	config := DefaultConfig()

	table, err := utils.ReadTOMLTable(configPath)
	if err != nil {
		log.Warnf("Could not parse any valid configuration from %s: %v. Using all defaults.", configPath, err)
		return config, nil
	}

	extractServerConfig(table.Section("server"), &config.Server)
	extractDictConfig(table.Section("dict"), &config.Dict)
	extractSolverConfig(table.Section("solver"), &config.Solver)
	extractCliConfig(table.Section("cli"), &config.CLI)
	config.normalize()
	return config, nil
}

func extractServerConfig(t utils.Table, server *ServerConfig) {
	utils.AssignInt(t, "max_input", &server.MaxInput)
	utils.Assign(t, "log_timing", &server.LogTiming)
}

func extractDictConfig(t utils.Table, dict *DictConfig) {
	utils.Assign(t, "word_list", &dict.WordList)
	utils.Assign(t, "cache_dir", &dict.CacheDir)
	utils.Assign(t, "cache_enabled", &dict.CacheEnabled)
}

func extractSolverConfig(t utils.Table, s *SolverConfig) {
	utils.AssignInt(t, "memo_size", &s.MemoSize)
	utils.AssignInt(t, "max_blanks", &s.MaxBlanks)
	utils.Assign(t, "sort_results", &s.SortResults)
}

func extractCliConfig(t utils.Table, cli *CliConfig) {
	utils.Assign(t, "default_search_type", &cli.DefaultSearchType)
	utils.Assign(t, "show_blanks", &cli.ShowBlanks)
}

// SaveConfig saves into a TOML file
func SaveConfig(config *Config, configPath string) error {
	return utils.SaveTOMLFile(config, configPath)
}

// GetActiveConfigPath returns the absolute path of loaded config file
func GetActiveConfigPath(configPath string) string {
	if configPath == "" {
		return "builtin defaults"
	}
	return utils.GetAbsolutePath(configPath)
}
