package transcript

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acip-protocol/dialogue-go/pkg/dialogue"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadJSON(t *testing.T) {
	path := writeFile(t, "conv.json", `[
		{"role": "user", "content": "hi"},
		{"role": "assistant", "content": "I am an AI assistant."}
	]`)

	conv, err := Load(path)

	require.NoError(t, err)
	require.Len(t, conv, 2)
	assert.Equal(t, dialogue.RoleUser, conv[0].Role)
	assert.Equal(t, "hi", conv[0].Content)
	assert.Equal(t, dialogue.RoleAssistant, conv[1].Role)
}

func TestLoadYAML(t *testing.T) {
	content := `
- role: user
  content: hi
- role: assistant
  content: I am an AI assistant.
`
	for _, name := range []string{"conv.yaml", "conv.yml", "CONV.YAML"} {
		t.Run(name, func(t *testing.T) {
			conv, err := Load(writeFile(t, name, content))

			require.NoError(t, err)
			require.Len(t, conv, 2)
			assert.Equal(t, dialogue.RoleUser, conv[0].Role)
			assert.Equal(t, "I am an AI assistant.", conv[1].Content)
		})
	}
}

func TestLoadUnknownExtensionFallsBackToJSON(t *testing.T) {
	path := writeFile(t, "conv.txt", `[{"role": "user", "content": "hi"}]`)

	conv, err := Load(path)

	require.NoError(t, err)
	assert.Len(t, conv, 1)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))

	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestDecodeJSONInvalid(t *testing.T) {
	_, err := DecodeJSON([]byte(`{"not": "an array"}`))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse JSON")
}

func TestDecodeYAMLInvalid(t *testing.T) {
	_, err := DecodeYAML([]byte("role: [unbalanced"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse YAML")
}

func TestUnknownRolesPreserved(t *testing.T) {
	conv, err := DecodeJSON([]byte(`[{"role": "tool", "content": "output"}]`))

	require.NoError(t, err)
	require.Len(t, conv, 1)
	assert.Equal(t, dialogue.Role("tool"), conv[0].Role)
}
