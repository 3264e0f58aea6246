package component

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_RegisterResolve(t *testing.T) {
	registry := NewRegistry()

	def := &Definition{
		ComponentName: "ImageLoader",
		ModulePath:    "vision/io",
	}
	registry.Register(def)

	got, ok := registry.Resolve("ImageLoader")
	require.True(t, ok)
	assert.Equal(t, "ImageLoader", got.Name())
	assert.Equal(t, "vision/io", got.Module())
}

func TestRegistry_ResolveUnknown(t *testing.T) {
	registry := NewRegistry()

	_, ok := registry.Resolve("Missing")
	assert.False(t, ok)
}

func TestRegistry_RegisterReplaces(t *testing.T) {
	registry := NewRegistry()

	registry.Register(&Definition{ComponentName: "X", ModulePath: "old"})
	registry.Register(&Definition{ComponentName: "X", ModulePath: "new"})

	got, ok := registry.Resolve("X")
	require.True(t, ok)
	assert.Equal(t, "new", got.Module())
}

func TestRegistry_NamesSorted(t *testing.T) {
	registry := NewRegistry()

	registry.Register(&Definition{ComponentName: "Zeta"})
	registry.Register(&Definition{ComponentName: "Alpha"})
	registry.Register(&Definition{ComponentName: "Mid"})

	assert.Equal(t, []string{"Alpha", "Mid", "Zeta"}, registry.Names())
}

func TestNotFoundError_Message(t *testing.T) {
	err := &NotFoundError{Name: "GaussianFilter"}
	assert.Equal(t, "Component 'GaussianFilter' not found.", err.Error())
}
