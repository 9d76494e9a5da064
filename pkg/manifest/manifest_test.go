// Package manifest tests cover the selective merge semantics and the
// serialization round-trip guarantees.
package manifest

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	goyaml "gopkg.in/yaml.v3"
)

func mustParse(t *testing.T, content string) Manifest {
	t.Helper()
	m, err := Parse([]byte(content))
	require.NoError(t, err)
	return m
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr bool
	}{
		{
			name:    "valid manifest",
			content: `{"version":"2024.1","helmCharts":{"api":{"version":"1.2.3"}}}`,
		},
		{
			name:    "manifest without helmCharts still parses",
			content: `{"version":"2024.1"}`,
		},
		{
			name:    "empty object",
			content: `{}`,
		},
		{
			name:    "invalid json",
			content: `{"helmCharts":`,
			wantErr: true,
		},
		{
			name:    "top level array",
			content: `[1,2,3]`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := Parse([]byte(tt.content))
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrParseManifest)
				assert.Nil(t, m)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, m)
		})
	}
}

func TestHelmCharts(t *testing.T) {
	m := mustParse(t, `{"helmCharts":{"api":{"version":"1.0.0"}}}`)
	charts, ok := m.HelmCharts()
	require.True(t, ok)
	assert.Contains(t, charts, "api")

	noCharts := mustParse(t, `{"version":"2024.1"}`)
	_, ok = noCharts.HelmCharts()
	assert.False(t, ok)

	// helmCharts present but not a mapping
	wrongType := mustParse(t, `{"helmCharts":["api"]}`)
	_, ok = wrongType.HelmCharts()
	assert.False(t, ok)
}

func TestCherryPick(t *testing.T) {
	tests := []struct {
		name     string
		target   string
		source   string
		names    []string
		expected string
		wantErr  error
	}{
		{
			name:     "identity on empty selection",
			target:   `{"version":"1","helmCharts":{"a":{"v":1},"b":{"v":2}}}`,
			source:   `{"version":"2","helmCharts":{"a":{"v":9}}}`,
			names:    nil,
			expected: `{"version":"1","helmCharts":{"a":{"v":1},"b":{"v":2}}}`,
		},
		{
			name:     "selective overwrite keeps unnamed entries",
			target:   `{"helmCharts":{"a":{"v":1},"b":{"v":2}}}`,
			source:   `{"helmCharts":{"a":{"v":9},"b":{"v":8}}}`,
			names:    []string{"a"},
			expected: `{"helmCharts":{"a":{"v":9},"b":{"v":2}}}`,
		},
		{
			name:     "entry absent from target is introduced from source",
			target:   `{"helmCharts":{"a":{"v":1},"b":{"v":2}}}`,
			source:   `{"helmCharts":{"a":{"v":9},"b":{"v":2},"c":{"v":3}}}`,
			names:    []string{"a", "c"},
			expected: `{"helmCharts":{"a":{"v":9},"b":{"v":2},"c":{"v":3}}}`,
		},
		{
			name:     "non chart keys pass through untouched",
			target:   `{"version":"1","images":["x"],"helmCharts":{"a":{"v":1}}}`,
			source:   `{"version":"2","images":["y"],"helmCharts":{"a":{"v":9}}}`,
			names:    []string{"a"},
			expected: `{"version":"1","images":["x"],"helmCharts":{"a":{"v":9}}}`,
		},
		{
			name:    "chart missing from source",
			target:  `{"helmCharts":{"a":{"v":1}}}`,
			source:  `{"helmCharts":{"a":{"v":9}}}`,
			names:   []string{"d"},
			wantErr: ErrChartNotFound,
		},
		{
			name:    "target lacks helmCharts",
			target:  `{"version":"1"}`,
			source:  `{"helmCharts":{"a":{"v":9}}}`,
			names:   []string{"a"},
			wantErr: ErrNoHelmCharts,
		},
		{
			name:    "source lacks helmCharts",
			target:  `{"helmCharts":{"a":{"v":1}}}`,
			source:  `{"version":"2"}`,
			names:   []string{"a"},
			wantErr: ErrNoHelmCharts,
		},
		{
			name:    "source helmCharts is not a mapping",
			target:  `{"helmCharts":{"a":{"v":1}}}`,
			source:  `{"helmCharts":"broken"}`,
			names:   []string{"a"},
			wantErr: ErrNoHelmCharts,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target := mustParse(t, tt.target)
			source := mustParse(t, tt.source)

			merged, err := CherryPick(target, source, tt.names)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, merged)
				return
			}
			require.NoError(t, err)

			expected := mustParse(t, tt.expected)
			if diff := cmp.Diff(expected, merged); diff != "" {
				t.Errorf("merged manifest mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCherryPickOrderIndependence(t *testing.T) {
	target := `{"helmCharts":{"a":{"v":1},"b":{"v":2}}}`
	source := `{"helmCharts":{"a":{"v":9},"b":{"v":8}}}`

	forward, err := CherryPick(mustParse(t, target), mustParse(t, source), []string{"a", "b"})
	require.NoError(t, err)
	reverse, err := CherryPick(mustParse(t, target), mustParse(t, source), []string{"b", "a"})
	require.NoError(t, err)

	if diff := cmp.Diff(forward, reverse); diff != "" {
		t.Errorf("order of chart names changed the result (-forward +reverse):\n%s", diff)
	}
}

func TestCherryPickDoesNotMutateTarget(t *testing.T) {
	target := mustParse(t, `{"helmCharts":{"a":{"v":1}}}`)
	source := mustParse(t, `{"helmCharts":{"a":{"v":9}}}`)

	_, err := CherryPick(target, source, []string{"a"})
	require.NoError(t, err)

	original := mustParse(t, `{"helmCharts":{"a":{"v":1}}}`)
	if diff := cmp.Diff(original, target); diff != "" {
		t.Errorf("target mutated by merge (-want +got):\n%s", diff)
	}
}

func TestEncodeJSONRoundTrip(t *testing.T) {
	m := mustParse(t, `{"version":"1","helmCharts":{"a":{"v":1},"b":{"v":2}}}`)

	for _, pretty := range []bool{false, true} {
		content, err := EncodeJSON(m, pretty)
		require.NoError(t, err)

		reparsed, err := Parse(content)
		require.NoError(t, err)
		if diff := cmp.Diff(m, reparsed); diff != "" {
			t.Errorf("round trip mismatch with pretty=%v (-want +got):\n%s", pretty, diff)
		}
	}
}

func TestEncodeJSONPrettyIsIndented(t *testing.T) {
	m := mustParse(t, `{"helmCharts":{"a":{"v":1}}}`)

	compact, err := EncodeJSON(m, false)
	require.NoError(t, err)
	assert.NotContains(t, string(compact), "\n")

	pretty, err := EncodeJSON(m, true)
	require.NoError(t, err)
	assert.Contains(t, string(pretty), "\n  ")
}

func TestEncodeYAML(t *testing.T) {
	m := mustParse(t, `{"version":"1","helmCharts":{"a":{"v":1}}}`)

	content, err := EncodeYAML(m)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, goyaml.Unmarshal(content, &decoded))
	assert.Equal(t, "1", decoded["version"])

	charts, ok := decoded["helmCharts"].(map[string]interface{})
	require.True(t, ok)
	assert.Contains(t, charts, "a")
}

func TestEncodeJSONUnserializableValue(t *testing.T) {
	m := Manifest{"helmCharts": map[string]interface{}{"a": json.RawMessage(`{broken`)}}
	_, err := EncodeJSON(m, false)
	assert.ErrorIs(t, err, ErrMarshalManifest)
}
