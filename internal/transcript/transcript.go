// Package transcript loads conversation transcripts from JSON or YAML files
// for the CLI.
package transcript

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/acip-protocol/dialogue-go/pkg/dialogue"
)

// message mirrors the transcript file schema. Role strings are kept as-is;
// the engine ignores roles it does not recognize.
type message struct {
	Role    string `json:"role" yaml:"role"`
	Content string `json:"content" yaml:"content"`
}

// Load reads a transcript file. The format is chosen by extension: .yaml and
// .yml decode as YAML, everything else as JSON.
func Load(path string) (dialogue.Conversation, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("transcript: read %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return DecodeYAML(data)
	default:
		return DecodeJSON(data)
	}
}

// DecodeJSON parses a JSON array of {role, content} messages.
func DecodeJSON(data []byte) (dialogue.Conversation, error) {
	var msgs []message
	if err := json.Unmarshal(data, &msgs); err != nil {
		return nil, fmt.Errorf("transcript: parse JSON: %w", err)
	}
	return toConversation(msgs), nil
}

// DecodeYAML parses a YAML sequence of {role, content} messages.
func DecodeYAML(data []byte) (dialogue.Conversation, error) {
	var msgs []message
	if err := yaml.Unmarshal(data, &msgs); err != nil {
		return nil, fmt.Errorf("transcript: parse YAML: %w", err)
	}
	return toConversation(msgs), nil
}

func toConversation(msgs []message) dialogue.Conversation {
	conv := make(dialogue.Conversation, len(msgs))
	for i, m := range msgs {
		conv[i] = dialogue.Message{
			Role:    dialogue.Role(m.Role),
			Content: m.Content,
		}
	}
	return conv
}
