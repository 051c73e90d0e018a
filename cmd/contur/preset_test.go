package main

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPreset_LoadReadsOnlyPresentFields(t *testing.T) {
	path := writePreset(t, `
threshold: 90
simplify: 0.8
width: 120
blur: 2.5
invert: true
bound: 512
`)

	preset, err := loadPreset(path)

	assert.NoError(t, err)
	assert.Equal(t, 90, *preset.Threshold)
	assert.Equal(t, 0.8, *preset.Simplify)
	assert.Equal(t, 120.0, *preset.Width)
	assert.Equal(t, 2.5, *preset.Blur)
	assert.True(t, *preset.Invert)
	assert.Equal(t, 512, *preset.Bound)
	assert.Nil(t, preset.Height)
	assert.Nil(t, preset.Sharpen)
	assert.Nil(t, preset.Contrast)
}

func TestPreset_ApplyOverridesUnsetFlags(t *testing.T) {
	stashFlags(t)
	path := writePreset(t, "threshold: 90\nsimplify: 0.8\n")

	preset, err := loadPreset(path)
	assert.NoError(t, err)

	preset.apply(map[string]bool{})

	assert.Equal(t, 90, *threshold)
	assert.Equal(t, 0.8, *simplify)
}

func TestPreset_ExplicitFlagsBeatThePreset(t *testing.T) {
	stashFlags(t)
	*threshold = 200
	path := writePreset(t, "threshold: 90\nsimplify: 0.8\n")

	preset, err := loadPreset(path)
	assert.NoError(t, err)

	preset.apply(map[string]bool{"threshold": true})

	assert.Equal(t, 200, *threshold)
	assert.Equal(t, 0.8, *simplify)
}

func TestPreset_MissingFileFails(t *testing.T) {
	_, err := loadPreset(filepath.Join(t.TempDir(), "missing.yml"))

	assert.Error(t, err)
}

func TestPreset_MalformedFileFails(t *testing.T) {
	path := writePreset(t, "threshold: [not an int\n")

	_, err := loadPreset(path)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "parse")
}

func TestPreset_ExplicitFlagsAreCollected(t *testing.T) {
	assert.NoError(t, flag.CommandLine.Set("conc", "4"))

	explicit := explicitFlags()

	assert.True(t, explicit["conc"])
	assert.False(t, explicit["threshold"])
}

// writePreset dumps the YAML body into a temp file and returns its path.
func writePreset(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "preset.yml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("failed to write the preset file: %v", err)
	}
	return path
}

// stashFlags restores every preset controlled flag when the test ends.
func stashFlags(t *testing.T) {
	t.Helper()

	origThreshold, origSimplify := *threshold, *simplify
	origWidth, origHeight := *width, *height
	origBlur, origSharpen, origContrast := *blurRadius, *sharpen, *contrast
	origEdge, origInvert, origBound := *edgeDetect, *invert, *bound
	t.Cleanup(func() {
		*threshold, *simplify = origThreshold, origSimplify
		*width, *height = origWidth, origHeight
		*blurRadius, *sharpen, *contrast = origBlur, origSharpen, origContrast
		*edgeDetect, *invert, *bound = origEdge, origInvert, origBound
	})
}
