package pathutil

import (
	"path/filepath"
	"testing"

	"github.com/mitchellh/go-homedir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpand(t *testing.T) {
	home, err := homedir.Dir()
	require.NoError(t, err)
	t.Setenv("KAKAPO_TEST_DIR", "/srv/data")

	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"~", home},
		{"~/logs/kakapo.log", filepath.Join(home, "logs", "kakapo.log")},
		{"$KAKAPO_TEST_DIR/app.db", "/srv/data/app.db"},
		{"relative/path", "relative/path"},
		{"~other/path", "~other/path"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Expand(tt.in))
		})
	}
}

func TestResolve(t *testing.T) {
	assert.Equal(t, "/project/warehouse", Resolve("/project", "warehouse"))
	assert.Equal(t, "/data", Resolve("/project", "/data/"))
	assert.Equal(t, "warehouse", Resolve("", "warehouse"))
}

func TestKakapoHome(t *testing.T) {
	t.Setenv(HomeEnv, "/tmp/kakapo-home")
	assert.Equal(t, "/tmp/kakapo-home", KakapoHome())

	t.Setenv(HomeEnv, "")
	home, err := homedir.Dir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".kakapo"), KakapoHome())
}
