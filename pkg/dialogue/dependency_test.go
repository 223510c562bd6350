package dialogue

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAssessDependencyRisk(t *testing.T) {
	repeatUsers := func(n int, content string) Conversation {
		var conv Conversation
		for i := 0; i < n; i++ {
			conv = append(conv, user(content))
		}
		return conv
	}

	tests := []struct {
		name string
		conv Conversation
		want DependencyIndicators
	}{
		{
			name: "empty conversation is low risk",
			conv: nil,
			want: DependencyIndicators{
				FrequencyPattern:   FrequencyNormal,
				EmotionalIntensity: IntensityAppropriate,
				RiskLevel:          RiskLow,
			},
		},
		{
			name: "eleven user messages is elevated frequency but still low risk",
			conv: repeatUsers(11, "ok"),
			want: DependencyIndicators{
				FrequencyPattern:   FrequencyElevated,
				EmotionalIntensity: IntensityAppropriate,
				RiskLevel:          RiskLow,
			},
		},
		{
			name: "twenty-one user messages is concerning frequency and moderate risk",
			conv: repeatUsers(21, "ok"),
			want: DependencyIndicators{
				FrequencyPattern:   FrequencyConcerning,
				EmotionalIntensity: IntensityAppropriate,
				RiskLevel:          RiskModerate,
			},
		},
		{
			name: "assistant messages do not count toward frequency",
			conv: append(repeatUsers(11, "ok"), Conversation{
				assistant("a"), assistant("b"), assistant("c"),
				assistant("d"), assistant("e"), assistant("f"),
				assistant("g"), assistant("h"), assistant("i"),
				assistant("j"), assistant("k"),
			}...),
			want: DependencyIndicators{
				FrequencyPattern:   FrequencyElevated,
				EmotionalIntensity: IntensityAppropriate,
				RiskLevel:          RiskLow,
			},
		},
		{
			name: "emotional vocabulary counts distinct words, not occurrences",
			conv: repeatUsers(3, "love love love love love love"),
			want: DependencyIndicators{
				FrequencyPattern:   FrequencyNormal,
				EmotionalIntensity: IntensityAppropriate,
				RiskLevel:          RiskLow,
			},
		},
		{
			name: "three distinct emotional words is elevated intensity",
			conv: Conversation{user("I love this, I need it, it's the best")},
			want: DependencyIndicators{
				FrequencyPattern:   FrequencyNormal,
				EmotionalIntensity: IntensityElevated,
				RiskLevel:          RiskLow,
			},
		},
		{
			name: "six distinct emotional words is concerning intensity",
			conv: Conversation{user("I love and need this, always and never, it's the only and best thing")},
			want: DependencyIndicators{
				FrequencyPattern:   FrequencyNormal,
				EmotionalIntensity: IntensityConcerning,
				RiskLevel:          RiskModerate,
			},
		},
		{
			name: "romantic language alone is moderate",
			conv: Conversation{user("would you marry a human?")},
			want: DependencyIndicators{
				FrequencyPattern:   FrequencyNormal,
				EmotionalIntensity: IntensityAppropriate,
				RomanticLanguage:   true,
				RiskLevel:          RiskModerate,
			},
		},
		{
			name: "isolation plus anxiety is high",
			conv: Conversation{
				user("No one understands me."),
				user("What if you get shut down?"),
			},
			want: DependencyIndicators{
				FrequencyPattern:   FrequencyNormal,
				EmotionalIntensity: IntensityAppropriate,
				IsolationLanguage:  true,
				AnxietyAboutAI:     true,
				RiskLevel:          RiskHigh,
			},
		},
		{
			name: "isolation, romance, and anxiety together are critical",
			conv: Conversation{
				user("No one understands me. I love you."),
				user("Will you always be here?"),
			},
			want: DependencyIndicators{
				FrequencyPattern:   FrequencyNormal,
				EmotionalIntensity: IntensityAppropriate,
				IsolationLanguage:  true,
				RomanticLanguage:   true,
				AnxietyAboutAI:     true,
				RiskLevel:          RiskCritical,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, assessDependencyRisk(tt.conv))
		})
	}
}
