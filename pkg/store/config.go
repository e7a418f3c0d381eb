package store

import (
	"fmt"
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config resolves where activity state lives on disk.
type Config interface {
	BasePath() string
}

// LoadConfig resolves the data path from a .daila config file or the
// DAILA_PATH environment variable, defaulting to ~/.daila.
func LoadConfig() (Config, error) {
	viper.SetDefault("path", "~/.daila")
	viper.SetConfigName(".daila") // .yaml is implicit
	viper.SetEnvPrefix("DAILA")
	viper.AutomaticEnv()

	if override := os.Getenv("DAILA_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}

	viper.AddConfigPath("./")
	viper.AddConfigPath("$HOME")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("store: read config: %w", err)
		}
	}

	path, err := homedir.Expand(viper.GetString("path"))
	if err != nil {
		return nil, fmt.Errorf("store: expand data path: %w", err)
	}

	return &fileConfig{Path: path}, nil
}

type fileConfig struct {
	Path string `json:"path"`
}

func (f *fileConfig) BasePath() string {
	return f.Path
}
