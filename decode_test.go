package flatyaml

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnmarshalIntoMap(t *testing.T) {
	var result map[string]any
	err := Unmarshal([]byte("host: localhost\nport: 8080\nretries: 3"), &result)
	require.NoError(t, err)

	assert.Equal(t, map[string]any{
		"host":    "localhost",
		"port":    int64(8080),
		"retries": int64(3),
	}, result)
}

func TestUnmarshalIntoAny(t *testing.T) {
	var result any
	err := Unmarshal([]byte("foo:bar"), &result)
	require.NoError(t, err)

	m, ok := result.(map[string]any)
	require.True(t, ok, "expected map[string]any, got %T", result)
	assert.Equal(t, "bar", m["foo"])
}

func TestUnmarshalList(t *testing.T) {
	var result map[string]any
	err := Unmarshal([]byte("- first\n- second"), &result)
	require.NoError(t, err)

	assert.Equal(t, []any{"first", "second"}, result["list-0"])
}

func TestUnmarshalErrors(t *testing.T) {
	var result map[string]any

	assert.Error(t, Unmarshal([]byte("key value"), &result))
	assert.Error(t, Unmarshal([]byte("foo:bar"), nil))
	assert.Error(t, Unmarshal([]byte("foo:bar"), result))      // not a pointer
	assert.Error(t, Unmarshal([]byte("foo:bar"), (*any)(nil))) // nil pointer
}

func TestDecoder(t *testing.T) {
	dec := NewDecoder(strings.NewReader("name: alice\nage: 30"))

	var result map[string]any
	require.NoError(t, dec.Decode(&result))
	assert.Equal(t, "alice", result["name"])
	assert.Equal(t, int64(30), result["age"])
}

func TestDecoderSyntaxError(t *testing.T) {
	dec := NewDecoder(strings.NewReader("name alice"))

	var result map[string]any
	err := dec.Decode(&result)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 1")
}

func TestUnmarshalIntConversions(t *testing.T) {
	type sizes struct {
		Small  int8    `flatyaml:"small"`
		Normal int     `flatyaml:"normal"`
		Wide   uint64  `flatyaml:"wide"`
		Ratio  float64 `flatyaml:"ratio"`
	}

	var s sizes
	err := Unmarshal([]byte("small: 7\nnormal: 1000\nwide: 42\nratio: 2"), &s)
	require.NoError(t, err)

	assert.Equal(t, int8(7), s.Small)
	assert.Equal(t, 1000, s.Normal)
	assert.Equal(t, uint64(42), s.Wide)
	assert.Equal(t, 2.0, s.Ratio)
}

func TestUnmarshalOverflow(t *testing.T) {
	type tiny struct {
		N int8 `flatyaml:"n"`
	}

	var v tiny
	assert.Error(t, Unmarshal([]byte("n: 1000"), &v))

	type unsigned struct {
		N uint `flatyaml:"n"`
	}
	var u unsigned
	assert.Error(t, Unmarshal([]byte("n: -1"), &u))
}
