package main

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/piemenu/pkg/theme"
)

const (
	settingsObject   = "theme"
	settingsProperty = "overrides"
)

// savedSettings is the part of the theme the demo lets the user change.
// Keys match the theme file so saved data can be applied with ApplyYAML.
type savedSettings struct {
	ChildTiltEnabled   bool   `yaml:"childTiltEnabled"`
	ChildBounceEnabled bool   `yaml:"childBounceEnabled"`
	OverlayStyle       string `yaml:"overlayStyle"`
}

// settingsStore persists theme overrides. A nil manager keeps everything
// in memory.
type settingsStore struct {
	manager *gdata.Manager
}

func openSettingsStore(appName string) *settingsStore {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		log.Printf("[piedemo] Warning: settings will not persist: %v", err)
		return &settingsStore{}
	}
	return &settingsStore{manager: m}
}

// apply layers saved overrides over th.
func (s *settingsStore) apply(th theme.PieTheme) (theme.PieTheme, error) {
	if s.manager == nil || !s.manager.ObjectPropExists(settingsObject, settingsProperty) {
		return th, nil
	}
	data, err := s.manager.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		return th, fmt.Errorf("failed to load settings: %w", err)
	}
	return theme.ApplyYAML(th, data)
}

func (s *settingsStore) save(th theme.PieTheme) error {
	if s.manager == nil {
		return nil
	}
	data, err := yaml.Marshal(savedSettings{
		ChildTiltEnabled:   th.ChildTiltEnabled,
		ChildBounceEnabled: th.ChildBounceEnabled,
		OverlayStyle:       th.OverlayStyle.String(),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}
	if err := s.manager.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}
