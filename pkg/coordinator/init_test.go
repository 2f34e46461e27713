package coordinator

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadOptions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flow.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[log]
path = "/tmp/flow/app.log"
level = "debug"
library_level = "warn"
`), 0o644))

	opts, err := LoadOptions(path)
	require.NoError(t, err)

	assert.Equal(t, Options{LogPath: "/tmp/flow/app.log", LogLevel: "debug", LibraryLogLevel: "warn"}, opts)
}

func TestLoadOptionsReportsPath(t *testing.T) {
	_, err := LoadOptions(filepath.Join(t.TempDir(), "missing.toml"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing.toml")
}
