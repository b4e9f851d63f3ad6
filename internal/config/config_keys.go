// config_keys.go provides key-value access to configuration settings for
// the config command and anything else that addresses settings by dotted
// name (e.g. "color.mode").
//
// Pointer fields distinguish "not set" from an explicit zero value, so
// attrs.prefix can be set to "" and log.audit to false.

package config

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// ValidKeys returns all valid configuration keys.
func ValidKeys() []string {
	return []string{
		"output.format",
		"color.mode",
		"attrs.prefix",
		"log.audit", "log.level",
	}
}

// IsValidKey returns true if the key is a valid configuration key.
func IsValidKey(key string) bool {
	return slices.Contains(ValidKeys(), key)
}

// Get returns the value of a configuration key as a string.
func (c *Config) Get(key string) (string, error) {
	switch key {
	case "output.format":
		return c.Output.Format, nil
	case "color.mode":
		return c.ColorMode(), nil
	case "attrs.prefix":
		p, _ := c.Prefix()
		return p, nil
	case "log.audit":
		return strconv.FormatBool(c.Audit()), nil
	case "log.level":
		return c.LogLevel().String(), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
}

// Set sets the value of a configuration key. An invalid value leaves the
// configuration unchanged.
func (c *Config) Set(key, value string) error {
	prev := *c
	switch key {
	case "output.format":
		c.Output.Format = value
	case "color.mode":
		c.Color.Mode = strings.ToLower(value)
	case "attrs.prefix":
		v := value
		c.Attrs.Prefix = &v
	case "log.audit":
		v := strings.ToLower(value)
		if v != "true" && v != "false" {
			return fmt.Errorf("%w: log.audit must be true or false", ErrInvalidValue)
		}
		b := v == "true"
		c.Log.Audit = &b
	case "log.level":
		c.Log.Level = strings.ToLower(value)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	if err := c.Validate(); err != nil {
		*c = prev
		return err
	}
	return nil
}

// All returns all configuration values as a map.
func (c *Config) All() map[string]string {
	prefix, _ := c.Prefix()
	return map[string]string{
		"output.format": c.Output.Format,
		"color.mode":    c.ColorMode(),
		"attrs.prefix":  prefix,
		"log.audit":     strconv.FormatBool(c.Audit()),
		"log.level":     c.LogLevel().String(),
	}
}

// IsSet returns true if the key has an explicit value (not just defaults).
func (c *Config) IsSet(key string) bool {
	switch key {
	case "output.format":
		return c.Output.Format != ""
	case "color.mode":
		return c.Color.Mode != ""
	case "attrs.prefix":
		return c.Attrs.Prefix != nil
	case "log.audit":
		return c.Log.Audit != nil
	case "log.level":
		return c.Log.Level != ""
	default:
		return false
	}
}
