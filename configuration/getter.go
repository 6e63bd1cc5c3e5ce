package configuration

import (
	"strings"
	"time"
)

// All returns a map of all flattened key paths and their values.
func (c *Configuration) All() map[string]interface{} {
	return c.config.All()
}

// Get returns the raw, uncast interface{} value of a given key path
// in the config map. If the key path does not exist, nil is returned.
func (c *Configuration) Get(path string) interface{} {
	return c.config.Get(strings.ToLower(path))
}

// Exists returns true if the given key path exists in the conf map.
func (c *Configuration) Exists(path string) bool {
	return c.config.Exists(strings.ToLower(path))
}

// Int returns the int value of a given key path or 0 if the path
// does not exist or if the value is not a valid int.
func (c *Configuration) Int(path string) int {
	return c.config.Int(strings.ToLower(path))
}

// Int64 returns the int64 value of a given key path or 0 if the path
// does not exist or if the value is not a valid int64.
func (c *Configuration) Int64(path string) int64 {
	return c.config.Int64(strings.ToLower(path))
}

// Float64 returns the float64 value of a given key path or 0 if the path
// does not exist or if the value is not a valid float64.
func (c *Configuration) Float64(path string) float64 {
	return c.config.Float64(strings.ToLower(path))
}

// Duration returns the time.Duration value of a given key path assuming
// that the key contains a valid numeric value.
func (c *Configuration) Duration(path string) time.Duration {
	return c.config.Duration(strings.ToLower(path))
}

// String returns the string value of a given key path or "" if the path
// does not exist or if the value is not a valid string.
func (c *Configuration) String(path string) string {
	return c.config.String(strings.ToLower(path))
}

// Strings returns the []string slice value of a given key path or an
// empty []string slice if the path does not exist or if the value
// is not a valid string slice.
func (c *Configuration) Strings(path string) []string {
	return c.config.Strings(strings.ToLower(path))
}

// Bool returns the bool value of a given key path or false if the path
// does not exist or if the value is not a valid bool representation.
// Accepted string representations of bool are the ones supported by strconv.ParseBool.
func (c *Configuration) Bool(path string) bool {
	return c.config.Bool(strings.ToLower(path))
}
