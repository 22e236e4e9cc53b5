package main

import (
	"fmt"
	"strings"

	"github.com/MetalBlockchain/calldata/chain/config"
	"github.com/MetalBlockchain/calldata/chain/constants"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	configFileKey        = "config-file"
	versionKey           = "version"
	logLevelKey          = "log-level"
	httpHostKey          = "http-host"
	httpPortKey          = "http-port"
	maxCallDataSizeKey   = "max-call-data-size"
	readHeaderTimeoutKey = "read-header-timeout"

	envPrefix = "CALLDATA"
)

func buildFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet(constants.AppName, pflag.ContinueOnError)
	fs.String(configFileKey, "", "Specifies a config file")
	fs.Bool(versionKey, false, "If true, print version and quit")
	fs.String(logLevelKey, config.Default.LogLevel, "The log level")
	fs.String(httpHostKey, config.Default.HTTPHost, "Address of the RPC server")
	fs.Uint16(httpPortKey, config.Default.HTTPPort, "Port of the RPC server")
	fs.Int(maxCallDataSizeKey, config.Default.MaxCallDataSize, "Maximum size of call data in bytes")
	fs.Duration(readHeaderTimeoutKey, config.Default.ReadHeaderTimeout, "Maximum duration to read request headers")
	return fs
}

// getViper parses [args] into [fs] and layers the result over the
// environment and the optional config file.
func getViper(fs *pflag.FlagSet, args []string) (*viper.Viper, error) {
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return nil, err
	}

	if configFile := v.GetString(configFileKey); configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("couldn't read config file %q: %w", configFile, err)
		}
	}
	return v, nil
}

func getConfig(v *viper.Viper) (*config.Config, error) {
	c := &config.Config{
		LogLevel:          v.GetString(logLevelKey),
		HTTPHost:          v.GetString(httpHostKey),
		HTTPPort:          uint16(v.GetUint(httpPortKey)),
		MaxCallDataSize:   v.GetInt(maxCallDataSizeKey),
		ReadHeaderTimeout: v.GetDuration(readHeaderTimeoutKey),
	}
	return c, c.Verify()
}
