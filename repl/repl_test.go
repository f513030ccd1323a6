package repl

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/akashmaji946/plox/config"
)

func TestPrintBanner_ColorDisabledOmitsEscapeCodes(t *testing.T) {
	cfg := config.Default()
	cfg.Color = false
	r := New(cfg)

	var buf bytes.Buffer
	r.PrintBanner(&buf)

	assert.NotContains(t, buf.String(), "\x1b[")
	assert.Contains(t, buf.String(), cfg.Banner)
}

func TestPrintBanner_ColorEnabledUsesEscapeCodes(t *testing.T) {
	cfg := config.Default()
	cfg.Color = true
	r := New(cfg)

	var buf bytes.Buffer
	r.PrintBanner(&buf)

	assert.Contains(t, buf.String(), "\x1b[")
}
