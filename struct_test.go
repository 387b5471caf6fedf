package flatyaml

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type serverConfig struct {
	Host    string   `flatyaml:"host"`
	Port    int      `flatyaml:"port"`
	Owner   string   `flatyaml:"owner"`
	Tags    []string `flatyaml:"list-0"`
	Ignored string   `flatyaml:"-"`

	unexported string
}

func TestUnmarshalIntoStruct(t *testing.T) {
	input := "host: localhost\nport: 9000\nowner: alice\n- web\n- db"

	var cfg serverConfig
	require.NoError(t, Unmarshal([]byte(input), &cfg))

	assert.Equal(t, "localhost", cfg.Host)
	assert.Equal(t, 9000, cfg.Port)
	assert.Equal(t, "alice", cfg.Owner)
	assert.Equal(t, []string{"web", "db"}, cfg.Tags)
	assert.Empty(t, cfg.Ignored)
	assert.Empty(t, cfg.unexported)
}

func TestUnmarshalStructFieldNameFallback(t *testing.T) {
	// Untagged fields match by their Go name.
	type doc struct {
		Mode string
	}

	var d doc
	require.NoError(t, Unmarshal([]byte("Mode: fast"), &d))
	assert.Equal(t, "fast", d.Mode)
}

func TestUnmarshalStructPointerField(t *testing.T) {
	type doc struct {
		Count *int64 `flatyaml:"count"`
	}

	var d doc
	require.NoError(t, Unmarshal([]byte("count: 5"), &d))
	require.NotNil(t, d.Count)
	assert.Equal(t, int64(5), *d.Count)
}

func TestUnmarshalStructTypeError(t *testing.T) {
	type doc struct {
		Port int `flatyaml:"port"`
	}

	var d doc
	err := Unmarshal([]byte("port: localhost"), &d)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Port")
}
