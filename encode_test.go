package flatyaml

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalMap(t *testing.T) {
	out, err := Marshal(map[string]any{
		"host":  "localhost",
		"port":  8080,
		"owner": "alice",
	})
	require.NoError(t, err)

	// Keys are sorted for deterministic output.
	assert.Equal(t, "host: localhost\nowner: alice\nport: 8080\n", string(out))
}

func TestMarshalList(t *testing.T) {
	out, err := Marshal([]string{"first", "second", "third"})
	require.NoError(t, err)
	assert.Equal(t, "- first\n- second\n- third\n", string(out))
}

func TestMarshalStruct(t *testing.T) {
	cfg := serverConfig{
		Host:    "localhost",
		Port:    9000,
		Owner:   "alice",
		Tags:    []string{"web", "db"},
		Ignored: "dropped",
	}

	out, err := Marshal(cfg)
	require.NoError(t, err)
	assert.Equal(t, "host: localhost\nport: 9000\nowner: alice\n- web\n- db\n", string(out))
}

func TestMarshalDocumentRoundTrip(t *testing.T) {
	doc, err := Parse([]byte("foo:bar\ncount: 5\n- one\n- two"))
	require.NoError(t, err)

	out, err := Marshal(doc)
	require.NoError(t, err)

	again, err := Parse(out)
	require.NoError(t, err)
	assert.Equal(t, doc.iface(), again.iface())
}

func TestMarshalRejectsUnrepresentable(t *testing.T) {
	f := func(name string, v any) {
		t.Helper()
		t.Run(name, func(t *testing.T) {
			t.Helper()
			if _, err := Marshal(v); err == nil {
				t.Errorf("expected error but got none")
			}
		})
	}

	f("top_level_scalar", "bare")
	f("non_alnum_key", map[string]any{"my key": "x"})
	f("string_with_digits", map[string]any{"k": "abc1"})
	f("string_with_spaces", map[string]any{"k": "two words"})
	f("float_value", map[string]any{"k": 3.14})
	f("bool_value", map[string]any{"k": true})
	f("nested_map", map[string]any{"k": map[string]any{"x": "y"}})
	f("two_lists", map[string]any{"a": []any{"x"}, "b": []any{"y"}})
	f("negative_list_item", []int{-1})
	f("list_item_with_space", []string{"two words"})
	f("nil_value", map[string]any{"k": nil})
}

func TestEncoderWritesToStream(t *testing.T) {
	var sb strings.Builder
	enc := NewEncoder(&sb)

	require.NoError(t, enc.Encode(map[string]any{"mode": "fast"}))
	assert.Equal(t, "mode: fast\n", sb.String())
}
