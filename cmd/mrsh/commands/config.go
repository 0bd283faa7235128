// Package commands provides CLI command implementations for mrsh.
package commands

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/mrshlab/mrsh"
)

// Sentinel validation errors for a loaded CoreParams.
var (
	ErrInvalidRollingWindow = errors.New("rolling_window must be positive")
	ErrInvalidBlockTrigger  = errors.New("block_trigger must be positive")
	ErrInvalidFilterSize    = errors.New("filter_size must be positive")
	ErrInvalidMaxBlocks     = errors.New("max_blocks must be positive")
	ErrInvalidKHashes       = errors.New("k_hashes must be positive")
	ErrInvalidMode          = errors.New("mode must be \"file\" or \"network\"")
)

// paramsConfig mirrors mrsh.CoreParams for viper unmarshaling: CoreParams
// itself carries no mapstructure tags, since the core has no business
// knowing about the CLI's configuration file format (spec §9 "process-wide
// configuration").
type paramsConfig struct {
	Mode          string `mapstructure:"mode"`
	RollingWindow int    `mapstructure:"rolling_window"`
	BlockTrigger  uint64 `mapstructure:"block_trigger"`
	Skip          int    `mapstructure:"skip"`
	FilterSize    int    `mapstructure:"filter_size"`
	MaxBlocks     int    `mapstructure:"max_blocks"`
	KHashes       int    `mapstructure:"k_hashes"`
}

// LoadParams loads a mrsh.CoreParams from configPath (if non-empty), the
// MRSH_-prefixed environment, and defaults, following the same
// viper.New/SetDefault/ReadInConfig/Unmarshal shape as Sumatoshi-tech/
// codefang's pkg/config.LoadConfig.
func LoadParams(configPath string) (mrsh.CoreParams, error) {
	v := viper.New()
	setParamsDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("mrsh")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("/etc/mrsh")
	}

	v.SetEnvPrefix("MRSH")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return mrsh.CoreParams{}, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg paramsConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return mrsh.CoreParams{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return cfg.toCoreParams()
}

func setParamsDefaults(v *viper.Viper) {
	d := mrsh.DefaultParams()
	v.SetDefault("mode", "file")
	v.SetDefault("rolling_window", d.RollingWindow)
	v.SetDefault("block_trigger", d.BlockTrigger)
	v.SetDefault("skip", d.Skip)
	v.SetDefault("filter_size", d.FilterSize)
	v.SetDefault("max_blocks", d.MaxBlocks)
	v.SetDefault("k_hashes", d.KHashes)
}

func (cfg paramsConfig) toCoreParams() (mrsh.CoreParams, error) {
	p := mrsh.CoreParams{
		RollingWindow: cfg.RollingWindow,
		BlockTrigger:  cfg.BlockTrigger,
		Skip:          cfg.Skip,
		FilterSize:    cfg.FilterSize,
		MaxBlocks:     cfg.MaxBlocks,
		KHashes:       cfg.KHashes,
	}

	switch cfg.Mode {
	case "", "file":
		p.Mode = mrsh.ModeFile
	case "network":
		p.Mode = mrsh.ModeNetwork
	default:
		return mrsh.CoreParams{}, fmt.Errorf("%w: %q", ErrInvalidMode, cfg.Mode)
	}

	if p.RollingWindow <= 0 {
		return mrsh.CoreParams{}, fmt.Errorf("%w: %d", ErrInvalidRollingWindow, p.RollingWindow)
	}
	if p.BlockTrigger == 0 {
		return mrsh.CoreParams{}, fmt.Errorf("%w: %d", ErrInvalidBlockTrigger, p.BlockTrigger)
	}
	if p.FilterSize <= 0 {
		return mrsh.CoreParams{}, fmt.Errorf("%w: %d", ErrInvalidFilterSize, p.FilterSize)
	}
	if p.MaxBlocks <= 0 {
		return mrsh.CoreParams{}, fmt.Errorf("%w: %d", ErrInvalidMaxBlocks, p.MaxBlocks)
	}
	if p.KHashes <= 0 {
		return mrsh.CoreParams{}, fmt.Errorf("%w: %d", ErrInvalidKHashes, p.KHashes)
	}

	return p, nil
}
