package store

import (
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config resolves where the journal database lives on disk.
type Config interface {
	BasePath() string
}

// LoadConfig reads an optional .dreamlog config file and the DREAMLOG_*
// environment, defaulting the database to ~/.dreamlog.db.
func LoadConfig() (Config, error) {
	viper.SetDefault("path", "~/.dreamlog.db")
	viper.SetConfigName(".dreamlog") // .yaml is implicit
	viper.SetEnvPrefix("DREAMLOG")
	viper.AutomaticEnv()

	if override := os.Getenv("DREAMLOG_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}

	viper.AddConfigPath("./")

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
