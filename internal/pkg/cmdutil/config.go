// Package cmdutil provides shared utilities for CLI command implementations.
package cmdutil

import (
	"github.com/spf13/viper"
)

// GetStringConfig returns flagValue if it is non-empty, otherwise the config value for key.
// Flag values take precedence over config file values.
func GetStringConfig(key, flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return viper.GetString(key)
}

// GetStringSliceConfig returns flagValue if it is non-empty, otherwise the config value
// for key if that is non-empty, otherwise flagValue.
// Flag values take precedence over config file values.
// The special value "any" in flagValue[0] is treated as unset.
func GetStringSliceConfig(key string, flagValue []string) []string {
	if len(flagValue) > 0 && flagValue[0] != "any" {
		return flagValue
	}
	// Check actual config value instead of viper.IsSet() which returns true
	// for bound flags even when config file doesn't define them
	if configValue := viper.GetStringSlice(key); len(configValue) > 0 {
		return configValue
	}
	return flagValue
}

// GetBoolConfig returns the config value for key, or flagValue if the key is not set.
func GetBoolConfig(key string, flagValue bool) bool {
	if viper.IsSet(key) {
		return viper.GetBool(key)
	}
	return flagValue
}
