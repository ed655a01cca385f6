// Package domain holds the settings patch type
package domain

import (
	"context"

	vaultdom "floaty/internal/services/vault/domain"
)

// Settings are the stored popup settings
type Settings = vaultdom.Settings

// Patch updates only the fields that are set
type Patch struct {
	SpeechEnabled *bool `json:"speechEnabled,omitempty"`
	AutoSave      *bool `json:"autoSave,omitempty"`
	DarkMode      *bool `json:"darkMode,omitempty"`
	Notifications *bool `json:"notifications,omitempty"`
}

// Apply returns s with the set fields of p
func (p Patch) Apply(s vaultdom.Settings) vaultdom.Settings {
	set := func(dst *bool, v *bool) {
		if v != nil {
			*dst = *v
		}
	}
	set(&s.SpeechEnabled, p.SpeechEnabled)
	set(&s.AutoSave, p.AutoSave)
	set(&s.DarkMode, p.DarkMode)
	set(&s.Notifications, p.Notifications)
	return s
}

// Empty reports whether p sets nothing
func (p Patch) Empty() bool {
	return p.SpeechEnabled == nil && p.AutoSave == nil && p.DarkMode == nil && p.Notifications == nil
}

// ServicePort is what the HTTP layer uses
type ServicePort interface {
	Get(ctx context.Context) (vaultdom.Settings, error)
	Update(ctx context.Context, p Patch) (vaultdom.Settings, error)
}
