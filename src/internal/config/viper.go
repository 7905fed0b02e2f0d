package config

import (
	"strings"

	"github.com/spf13/viper"
)

// NewViper loads configuration from config.json with env override.
func NewViper() *viper.Viper {
	config := viper.New()

	config.SetConfigName("config")
	config.SetConfigType("json")
	config.AddConfigPath("./")
	config.AddConfigPath("./../")
	config.AddConfigPath("./../../")
	config.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	config.AutomaticEnv()

	_ = config.ReadInConfig()

	return config
}
