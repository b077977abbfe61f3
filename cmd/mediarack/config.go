// Config loading for the mediarack CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/mesh-intelligence/mediarack/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	cfgKeyListenAddr = "listen_addr"
	cfgKeyDataDir    = "data_dir"
	cfgKeySeedCount  = "seed_count"

	defaultListenAddr = ":3000"
	defaultDataDir    = "data"
	defaultSeedCount  = 0
)

// defaultConfigYAML is the content written to config.yaml on first run.
const defaultConfigYAML = `# mediarack configuration

# Address the HTTP server listens on
listen_addr: ":3000"

# Directory holding media.db (overridable by --data-dir flag)
data_dir: data

# Number of random records added when seeding an empty store,
# on top of the fixed sample set
seed_count: 0
`

// loadConfig reads config.yaml from the resolved config directory using Viper.
// It creates the config directory and a default config.yaml on first run.
// A missing config.yaml is not an error.
func loadConfig(configDir string) (*viper.Viper, error) {
	if err := ensureConfigDir(configDir); err != nil {
		return nil, fmt.Errorf("ensure config dir: %w", err)
	}

	if err := ensureDefaultConfigFile(configDir); err != nil {
		return nil, fmt.Errorf("ensure default config: %w", err)
	}

	v := viper.New()
	v.SetDefault(cfgKeyListenAddr, defaultListenAddr)
	v.SetDefault(cfgKeyDataDir, defaultDataDir)
	v.SetDefault(cfgKeySeedCount, defaultSeedCount)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	v.SetEnvPrefix("MEDIARACK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	return v, nil
}

// resolveConfig builds the service Config with precedence:
// flags > MEDIARACK_* env > config.yaml > defaults.
func resolveConfig() (types.Config, error) {
	v, err := loadConfig(resolveConfigDir())
	if err != nil {
		return types.Config{}, err
	}

	cfg := types.Config{
		ListenAddr: v.GetString(cfgKeyListenAddr),
		DataDir:    v.GetString(cfgKeyDataDir),
		SeedCount:  v.GetInt(cfgKeySeedCount),
	}
	if flagListen != "" {
		cfg.ListenAddr = flagListen
	}
	if flagDataDir != "" {
		cfg.DataDir = flagDataDir
	}

	if err := cfg.Validate(); err != nil {
		return types.Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// ensureConfigDir creates the config directory if it does not exist.
func ensureConfigDir(configDir string) error {
	return os.MkdirAll(configDir, 0o755)
}

// ensureDefaultConfigFile creates a default config.yaml if the file does not
// exist in the config directory.
func ensureDefaultConfigFile(configDir string) error {
	path := filepath.Join(configDir, configFileExt)

	_, err := os.Stat(path)
	if err == nil {
		// File already exists.
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}

	return os.WriteFile(path, []byte(defaultConfigYAML), 0o644)
}
