package keys

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGlobalKeyStringsMap_VimAliases(t *testing.T) {
	assert.Equal(t, KeyUp, GlobalKeyStringsMap["k"])
	assert.Equal(t, KeyDown, GlobalKeyStringsMap["j"])
	assert.Equal(t, KeyQuit, GlobalKeyStringsMap["esc"])

	_, bound := GlobalKeyStringsMap["q"]
	assert.False(t, bound, "letters other than j/k go to the filter")
}

func TestGlobalKeyStringsMap_AgreesWithBindings(t *testing.T) {
	for str, name := range GlobalKeyStringsMap {
		binding, ok := GlobalkeyBindings[name]
		if assert.True(t, ok, "no binding for %q", str) {
			assert.Contains(t, binding.Keys(), str)
		}
	}
}

func TestGlobalKeyBindings_HelpLabels(t *testing.T) {
	assert.Equal(t, "select", GlobalkeyBindings[KeyEnter].Help().Desc)
	assert.Equal(t, "cancel", GlobalkeyBindings[KeyQuit].Help().Desc)
	assert.Len(t, HelpOrder, len(GlobalkeyBindings))
	for _, name := range HelpOrder {
		assert.True(t, GlobalkeyBindings[name].Enabled())
	}
}
