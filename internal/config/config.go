// SPDX-License-Identifier: GPL-3.0-or-later

package config

import (
	"fmt"

	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cast"
)

// Config holds process-level configuration
type Config struct {
	Masscan MasscanConfig
}

// MasscanConfig holds the default scan parameters used when the
// corresponding flags are not provided
type MasscanConfig struct {
	Rate  string
	Iface string
}

// hardcoded baseline values, overridable per invocation
func defaults() map[string]any {
	return map[string]any{
		"masscan.rate":  1000,
		"masscan.iface": "",
	}
}

// Manager loads and merges configuration sources
type Manager struct {
	k *koanf.Koanf
}

// NewManager returns a new configuration Manager
func NewManager() *Manager {
	return &Manager{
		k: koanf.New("."),
	}
}

// Load merges defaults with the provided overrides, overrides winning.
// The rate value may arrive as a string or a number; it is normalized to
// the string masscan expects.
func (m *Manager) Load(overrides map[string]any) (*Config, error) {
	if err := m.k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("error loading default config: %w", err)
	}

	if len(overrides) > 0 {
		if err := m.k.Load(confmap.Provider(overrides, "."), nil); err != nil {
			return nil, fmt.Errorf("error loading config overrides: %w", err)
		}
	}

	return &Config{
		Masscan: MasscanConfig{
			Rate:  cast.ToString(m.k.Get("masscan.rate")),
			Iface: m.k.String("masscan.iface"),
		},
	}, nil
}
