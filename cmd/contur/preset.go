package main

import (
	"flag"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Preset holds conversion settings loaded from a YAML profile, so a
// set of tuned parameters for a material or scanner can be reused
// across invocations. Only the fields present in the file override
// the flag defaults, and flags set explicitly on the command line
// always win over the preset.
type Preset struct {
	Threshold *int     `yaml:"threshold,omitempty"`
	Simplify  *float64 `yaml:"simplify,omitempty"`
	Width     *float64 `yaml:"width,omitempty"`
	Height    *float64 `yaml:"height,omitempty"`
	Blur      *float64 `yaml:"blur,omitempty"`
	Sharpen   *float64 `yaml:"sharpen,omitempty"`
	Contrast  *float64 `yaml:"contrast,omitempty"`
	Edge      *bool    `yaml:"edge,omitempty"`
	Invert    *bool    `yaml:"invert,omitempty"`
	Bound     *int     `yaml:"bound,omitempty"`
}

// loadPreset reads and parses a YAML preset file.
func loadPreset(path string) (*Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read the preset file: %w", err)
	}

	var p Preset
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("unable to parse the preset file: %w", err)
	}
	return &p, nil
}

// explicitFlags collects the names of the flags set on the command line.
func explicitFlags() map[string]bool {
	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) {
		set[f.Name] = true
	})
	return set
}

// apply copies the preset values into the corresponding flag variables,
// skipping every flag the user set explicitly.
func (p *Preset) apply(explicit map[string]bool) {
	if p.Threshold != nil && !explicit["threshold"] {
		*threshold = *p.Threshold
	}
	if p.Simplify != nil && !explicit["simplify"] {
		*simplify = *p.Simplify
	}
	if p.Width != nil && !explicit["width"] {
		*width = *p.Width
	}
	if p.Height != nil && !explicit["height"] {
		*height = *p.Height
	}
	if p.Blur != nil && !explicit["blur"] {
		*blurRadius = *p.Blur
	}
	if p.Sharpen != nil && !explicit["sharpen"] {
		*sharpen = *p.Sharpen
	}
	if p.Contrast != nil && !explicit["contrast"] {
		*contrast = *p.Contrast
	}
	if p.Edge != nil && !explicit["edge"] {
		*edgeDetect = *p.Edge
	}
	if p.Invert != nil && !explicit["invert"] {
		*invert = *p.Invert
	}
	if p.Bound != nil && !explicit["bound"] {
		*bound = *p.Bound
	}
}
