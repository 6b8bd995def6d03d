package dsl_test

import (
	"context"
	"testing"

	"github.com/aretw0/minerva"
	"github.com/aretw0/minerva/pkg/catalog"
	"github.com/aretw0/minerva/pkg/dsl"
	"github.com/aretw0/minerva/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder_SimpleFlow(t *testing.T) {
	b := dsl.New("hola")

	b.Add("hola").
		Say("Bienvenido\n1️⃣ Cursos").
		On("1", "cursos")

	b.Add("cursos").
		Say("¿Volver?").
		Yes("hola").
		No("adios")

	b.Add("adios").Say("¡Hasta pronto!")

	loader, err := b.Build()
	require.NoError(t, err)
	assert.Equal(t, "hola", loader.StartNodeID())

	nodes, err := loader.LoadNodes()
	require.NoError(t, err)
	require.Len(t, nodes, 3)
	assert.Equal(t, []string{"hola", "cursos", "adios"}, []string{nodes[0].ID, nodes[1].ID, nodes[2].ID}, "insertion order")
	assert.Equal(t, map[string]string{"sí": "hola", "si": "hola", "no": "adios"}, nodes[1].Options)
	assert.True(t, nodes[2].IsTerminal())

	bot, err := minerva.New(minerva.WithLoader(loader))
	require.NoError(t, err)

	ctx := context.Background()
	reply, err := bot.Reply(ctx, "ana", "1")
	require.NoError(t, err)
	assert.Equal(t, domain.Reply{State: "cursos", Response: "¿Volver?", Matched: true}, reply)

	reply, err = bot.Reply(ctx, "ana", "NO")
	require.NoError(t, err)
	assert.Equal(t, "adios", reply.State)
}

func TestBuilder_NormalizesKeys(t *testing.T) {
	b := dsl.New("a")
	nb := b.Add("a").Say("x").On("  SÍ ", "a")

	assert.Equal(t, map[string]string{"sí": "a"}, nb.Node().Options)
	assert.Same(t, nb, b.Add("a"), "Add returns the existing node")
}

func TestBuilder_Errors(t *testing.T) {
	t.Run("Empty Key", func(t *testing.T) {
		b := dsl.New("a")
		b.Add("a").On("   ", "a")
		_, err := b.Build()
		assert.ErrorContains(t, err, "empty option key")
	})

	t.Run("Empty Start", func(t *testing.T) {
		b := dsl.New("")
		b.Add("a")
		_, err := b.Build()
		assert.Error(t, err)
	})

	t.Run("Broken Link Caught By Graph", func(t *testing.T) {
		b := dsl.New("a")
		b.Add("a").On("1", "nowhere")
		loader, err := b.Build()
		require.NoError(t, err)

		_, err = minerva.New(minerva.WithLoader(loader))
		assert.ErrorIs(t, err, domain.ErrInvalidGraph)
	})
}

func TestBuilder_RebuildsCatalog(t *testing.T) {
	b := dsl.New(catalog.StartNodeID)
	for _, n := range catalog.Nodes() {
		nb := b.Add(n.ID).Say(n.Message)
		for key, to := range n.Options {
			nb.On(key, to)
		}
	}

	loader, err := b.Build()
	require.NoError(t, err)
	nodes, err := loader.LoadNodes()
	require.NoError(t, err)
	assert.Equal(t, catalog.Nodes(), nodes)
}
