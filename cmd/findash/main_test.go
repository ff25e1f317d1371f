package main

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/findash/findash/internal/app"
	"github.com/findash/findash/internal/finance"
	_ "github.com/findash/findash/internal/testing/guard"
)

func TestNewGeneratorHonoursSeed(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(new(bytes.Buffer), nil))

	a := newGenerator(&app.Config{GeneratorSeed: "21"}, logger).Generate(finance.KindActual)
	b := newGenerator(&app.Config{GeneratorSeed: "21"}, logger).Generate(finance.KindActual)
	assert.Equal(t, a, b)

	assert.Len(t, newGenerator(&app.Config{}, logger).Generate(finance.KindPlan), 48)
}

func TestRunExportUsageError(t *testing.T) {
	assert.Equal(t, 2, runExport(t.Context(), []string{"-format"}))
}

func TestMainSkipsStartupInTestMode(t *testing.T) {
	app.RefreshTestMode()
	assert.True(t, app.InTestMode())
	main()
}
