// Package config reads composedetect settings from environment variables.
// It has no dependency on the logger package so the logger can use it during bootstrap.
package config

import (
	"os"
	"strings"
)

// EnvPrefix namespaces every variable the tool reads.
const EnvPrefix = "COMPOSEDETECT_"

// Conf is a namespaced view over environment variables (e.g. "LOG_").
type Conf struct{ prefix string }

// New returns the root Conf scoped to EnvPrefix.
func New() Conf { return Conf{prefix: EnvPrefix} }

// Prefix returns a child Conf with an additional prefix.
func (c Conf) Prefix(p string) Conf { return Conf{prefix: c.prefix + p} }

// Key composes the fully-qualified env var name.
func (c Conf) Key(k string) string { return c.prefix + k }

// Get returns the trimmed env var or def if empty.
func (c Conf) Get(key, def string) string {
	v := strings.TrimSpace(os.Getenv(c.Key(key)))
	if v == "" {
		return def
	}
	return v
}

// GetBool parses a bool-like env ("1|true|yes") with default fallback.
func (c Conf) GetBool(key string, def bool) bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv(c.Key(key))))
	if v == "" {
		return def
	}
	return v == "1" || v == "true" || v == "yes"
}
