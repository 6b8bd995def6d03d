package tui_test

import (
	"bytes"
	"testing"

	"github.com/aretw0/minerva/internal/presentation/tui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintBanner(t *testing.T) {
	var buf bytes.Buffer
	tui.PrintBanner(&buf)
	assert.Contains(t, buf.String(), "Centro de Formación Minerva")
}

func TestNewRenderer(t *testing.T) {
	render, err := tui.NewRenderer()
	require.NoError(t, err)

	out, err := render("Hola\n1️⃣ Seguir")
	require.NoError(t, err)
	assert.Contains(t, out, "Hola")
	assert.Contains(t, out, "Seguir")
}

func TestPlainRenderer(t *testing.T) {
	out, err := tui.PlainRenderer()("Hola")
	require.NoError(t, err)
	assert.Equal(t, "Hola\n", out)
}
