package env

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFile(t *testing.T) {
	assert.NoError(t, Load(filepath.Join(t.TempDir(), ".env")))
}

func TestLoadSetsUnsetVariables(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("# comment\nCUBE_TWEAKS_A=one\nCUBE_TWEAKS_B=\"two words\"\n"), 0o644))
	t.Setenv("CUBE_TWEAKS_B", "kept")
	os.Unsetenv("CUBE_TWEAKS_A")
	t.Cleanup(func() { os.Unsetenv("CUBE_TWEAKS_A") })

	require.NoError(t, Load(path))
	assert.Equal(t, "one", os.Getenv("CUBE_TWEAKS_A"))
	assert.Equal(t, "kept", os.Getenv("CUBE_TWEAKS_B"))
}
