package sar

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

var (
	cfgLoaded = false
	config    = _sarconfig{}
)

// _sarconfig is a "hidden" struct, just use `sarConfig`
type _sarconfig struct {
	outputDir string
}

// sarConfig returns the tool configuration.
func sarConfig() _sarconfig {
	if cfgLoaded {
		return config
	}
	// Load the configuration file
	confPath := os.Getenv("SAR_CONFIG")
	if confPath == "" {
		panic("environment variable `SAR_CONFIG` is missing or empty")
	}
	viper.SetConfigName("conf")
	viper.AddConfigPath(confPath)
	err := viper.ReadInConfig()
	if err != nil {
		panic(fmt.Errorf("%s/conf.toml not found", confPath))
	}

	outputDir := viper.GetString("general.output_path")
	if outputDir == "" {
		outputDir = "."
	}
	config = _sarconfig{outputDir: outputDir}
	cfgLoaded = true
	return config
}
