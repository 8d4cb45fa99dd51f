package catalog

import (
	"encoding/json"
	"testing"

	"github.com/kakapo/kakapo/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKind(t *testing.T) {
	tests := []struct {
		in   string
		want Kind
	}{
		{"table", KindTable},
		{"tables", KindTable},
		{"View", KindView},
		{"queries", KindQuery},
		{" script ", KindScript},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			k, err := ParseKind(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, k)
		})
	}

	_, err := ParseKind("widgets")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeUnknownKind))
}

func TestKindNames(t *testing.T) {
	assert.Equal(t, "query", KindQuery.String())
	assert.Equal(t, "Queries", KindQuery.Label())
	assert.Equal(t, "queries", KindQuery.Dir())
	assert.Equal(t, "unknown", Kind(9).String())
	assert.False(t, Kind(-1).Valid())
}

func TestParseKindsDropsRepeats(t *testing.T) {
	kinds, err := ParseKinds([]string{"views", "table", "view"})
	require.NoError(t, err)
	assert.Equal(t, []Kind{KindView, KindTable}, kinds)

	_, err = ParseKinds([]string{"table", "nope"})
	assert.True(t, errors.Is(err, errors.ErrCodeUnknownKind))
}

func TestKindJSON(t *testing.T) {
	data, err := json.Marshal([]Kind{KindTable, KindScript})
	require.NoError(t, err)
	assert.JSONEq(t, `["table","script"]`, string(data))

	var k Kind
	require.NoError(t, json.Unmarshal([]byte(`"views"`), &k))
	assert.Equal(t, KindView, k)
}
