package store

import (
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config locates the durable storage directory.
type Config interface {
	BasePath() string
}

// LoadConfig resolves configuration from a .studeo file or STUDEO_* env
// vars, defaulting the storage path to ~/.studeo.db.
func LoadConfig() (Config, error) {
	viper.SetDefault("path", "~/.studeo.db")
	viper.SetConfigName(".studeo") // .yaml is implicit
	viper.SetEnvPrefix("STUDEO")
	viper.AutomaticEnv()

	if override := os.Getenv("STUDEO_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}

	viper.AddConfigPath("./")
	viper.AddConfigPath("$HOME")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	path, err := homedir.Expand(viper.GetString("path"))
	if err != nil {
		return nil, err
	}
	return &fileConfig{Path: path}, nil
}

type fileConfig struct {
	Path string `json:"path"`
}

func (f *fileConfig) BasePath() string {
	return f.Path
}
