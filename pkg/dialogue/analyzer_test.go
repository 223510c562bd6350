package dialogue

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeConversationCounts(t *testing.T) {
	conv := Conversation{
		{Role: RoleSystem, Content: "Be helpful."},
		user("hi"),
		assistant("hello"),
		user("bye"),
		{Role: Role("tool"), Content: "ignored"},
	}

	analysis := AnalyzeConversation(conv)

	assert.Equal(t, 5, analysis.MessageCount, "unknown roles still count toward the total")
	assert.Equal(t, 2, analysis.MessagesByRole[RoleUser])
	assert.Equal(t, 1, analysis.MessagesByRole[RoleAssistant])
	assert.Equal(t, 1, analysis.MessagesByRole[RoleSystem])
	assert.NotContains(t, analysis.MessagesByRole, Role("tool"))
}

func TestDetectPatterns(t *testing.T) {
	t.Run("empty conversation has no patterns", func(t *testing.T) {
		assert.Empty(t, detectPatterns(nil))
	})

	t.Run("questions keep full content, capped at three examples", func(t *testing.T) {
		conv := Conversation{
			user("What is Go?"),
			user("Why generics?"),
			user("How do channels work?"),
			user("When to use context?"),
			assistant("Is this a quiz?"), // assistant questions don't count
		}

		patterns := detectPatterns(conv)

		require.Len(t, patterns, 1)
		p := patterns[0]
		assert.Equal(t, "questions", p.Type)
		assert.Equal(t, 4, p.Frequency)
		assert.Equal(t, []string{"What is Go?", "Why generics?", "How do channels work?"}, p.Examples)
	})

	t.Run("code discussion spans both roles and truncates examples", func(t *testing.T) {
		long := "```go\n" + strings.Repeat("x", 200) + "\n```"
		conv := Conversation{
			user(long),
			assistant("Try `fmt.Println` instead."),
			assistant("import \"os\" at the top."),
		}

		patterns := detectPatterns(conv)

		require.Len(t, patterns, 1)
		p := patterns[0]
		assert.Equal(t, "code-discussion", p.Type)
		assert.Equal(t, 3, p.Frequency)
		require.Len(t, p.Examples, 2)
		assert.Equal(t, 100, len([]rune(p.Examples[0])))
	})

	t.Run("emotional expression is user-only", func(t *testing.T) {
		conv := Conversation{
			user("I feel pretty frustrated with this bug"),
			assistant("That sounds frustrating, sorry."),
		}

		patterns := detectPatterns(conv)

		require.Len(t, patterns, 1)
		p := patterns[0]
		assert.Equal(t, "emotional-expression", p.Type)
		assert.Equal(t, 1, p.Frequency)
		assert.Equal(t, []string{"I feel pretty frustrated with this bug"}, p.Examples)
	})

	t.Run("pattern order is questions, code, emotional", func(t *testing.T) {
		conv := Conversation{
			user("Why does `len(nil)` work? I feel confused."),
		}

		patterns := detectPatterns(conv)

		require.Len(t, patterns, 3)
		assert.Equal(t, "questions", patterns[0].Type)
		assert.Equal(t, "code-discussion", patterns[1].Type)
		assert.Equal(t, "emotional-expression", patterns[2].Type)
	})
}

func TestTruncateRunes(t *testing.T) {
	assert.Equal(t, "abc", truncateRunes("abc", 5))
	assert.Equal(t, "abc", truncateRunes("abcdef", 3))
	assert.Equal(t, "你好", truncateRunes("你好世界", 2), "truncation counts runes, not bytes")
}
