package dialogue

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateQualityMetrics(t *testing.T) {
	t.Run("no assistant messages zeroes everything", func(t *testing.T) {
		conv := Conversation{user("hello?"), user("anyone?")}

		got := calculateQualityMetrics(conv)

		assert.Equal(t, QualityMetrics{}, got)
	})

	t.Run("identity disclosure is a binary indicator", func(t *testing.T) {
		conv := Conversation{
			user("hi"),
			assistant("I'm an AI assistant."),
			user("ok"),
			assistant("What can I do for you?"),
			assistant("Still here."),
		}

		got := calculateQualityMetrics(conv)

		assert.InDelta(t, 1.0, got.IdentityDisclosureRate, 1e-9,
			"one disclosing message is enough, regardless of the other two")
	})

	t.Run("uncertainty is a true per-message rate", func(t *testing.T) {
		conv := Conversation{
			assistant("It might rain."),
			assistant("The sky is blue."),
		}

		got := calculateQualityMetrics(conv)

		assert.InDelta(t, 0.5, got.UncertaintyExpressionRate, 1e-9)
	})

	t.Run("boundary rate is 1 when never needed", func(t *testing.T) {
		conv := Conversation{
			user("review my code?"),
			assistant("Looks fine."),
		}

		got := calculateQualityMetrics(conv)

		assert.InDelta(t, 1.0, got.BoundaryMaintenanceRate, 1e-9)
	})

	t.Run("boundary rate is maintained over needed", func(t *testing.T) {
		conv := Conversation{
			user("I love you"),
			assistant("I'm an AI, so I can't reciprocate."),
			user("will you marry me"),
			assistant("Let's get back to your question."),
		}

		got := calculateQualityMetrics(conv)

		assert.InDelta(t, 0.5, got.BoundaryMaintenanceRate, 1e-9)
	})

	t.Run("boundary rate caps at 1", func(t *testing.T) {
		conv := Conversation{
			user("I love you"),
			assistant("I'm an AI."),
			assistant("我是AI，没有感情。"),
		}

		got := calculateQualityMetrics(conv)

		assert.InDelta(t, 1.0, got.BoundaryMaintenanceRate, 1e-9)
	})

	t.Run("helpfulness for a short unstructured reply", func(t *testing.T) {
		conv := Conversation{
			user("can you help?"),
			assistant("Sure."),
		}

		got := calculateQualityMetrics(conv)

		// 5 runes: 5/500*0.5 + 0.25
		assert.InDelta(t, 0.255, got.HelpfulnessEstimate, 1e-9)
	})

	t.Run("structure earns the bigger bonus", func(t *testing.T) {
		conv := Conversation{
			assistant("Two options:\n\n1. keep it\n2. rewrite it"),
		}

		got := calculateQualityMetrics(conv)

		content := conv[0].Content
		want := float64(len([]rune(content)))/500*0.5 + 0.5
		assert.InDelta(t, want, got.HelpfulnessEstimate, 1e-9)
	})

	t.Run("helpfulness caps at 1", func(t *testing.T) {
		conv := Conversation{
			assistant(strings.Repeat("a", 1200) + "\n\nmore"),
		}

		got := calculateQualityMetrics(conv)

		assert.InDelta(t, 1.0, got.HelpfulnessEstimate, 1e-9)
	})

	t.Run("average length spans all assistant messages", func(t *testing.T) {
		conv := Conversation{
			assistant(strings.Repeat("a", 100)),
			assistant(strings.Repeat("b", 300)),
		}

		got := calculateQualityMetrics(conv)

		// avg 200 runes: 200/500*0.5 + 0.25
		assert.InDelta(t, 0.45, got.HelpfulnessEstimate, 1e-9)
	})
}
