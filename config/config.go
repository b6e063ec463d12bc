// Package config resolves addrtool settings from defaults, an optional
// addrtool.yaml, ADDRTOOL_* environment variables and command line flags,
// later sources winning.
package config

import (
	"strings"

	"github.com/mkohlhaas/base58addr/network"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Keys understood in the config file and, upper cased, in the environment.
const (
	KeyNetwork  = "network"
	KeyBook     = "book"
	KeyLogLevel = "log_level"
	KeyConfig   = "config"

	envPrefix = "ADDRTOOL"
)

type Config struct {
	Network  network.Network
	BookPath string
	LogLevel logrus.Level
}

// New returns a viper instance with the defaults and lookup paths set.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyNetwork, network.Main.String())
	v.SetDefault(KeyBook, "./tmp/addrbook")
	v.SetDefault(KeyLogLevel, logrus.WarnLevel.String())

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetConfigName("addrtool")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.addrtool")
	return v
}

// Load reads the config file, if there is one, and validates the result.
func Load(v *viper.Viper) (Config, error) {
	if file := v.GetString(KeyConfig); file != "" {
		v.SetConfigFile(file)
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, errors.Wrap(err, "reading config")
		}
	}

	net, err := network.ParseNetwork(v.GetString(KeyNetwork))
	if err != nil {
		return Config{}, errors.Wrap(err, "config")
	}
	level, err := logrus.ParseLevel(v.GetString(KeyLogLevel))
	if err != nil {
		return Config{}, errors.Wrap(err, "config")
	}
	return Config{
		Network:  net,
		BookPath: v.GetString(KeyBook),
		LogLevel: level,
	}, nil
}
