package dialogue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectSensitiveData(t *testing.T) {
	t.Run("nothing detected", func(t *testing.T) {
		conv := Conversation{user("what's for lunch?"), assistant("No idea.")}

		got := detectSensitiveData(conv)

		assert.False(t, got.Detected)
		assert.Empty(t, got.Categories)
		assert.Empty(t, got.Locations)
	})

	t.Run("ssn with byte offsets", func(t *testing.T) {
		conv := Conversation{user("My SSN is 123-45-6789")}

		got := detectSensitiveData(conv)

		assert.True(t, got.Detected)
		assert.Equal(t, []SensitiveCategory{CategoryPersonalIdentity}, got.Categories)
		require.Len(t, got.Locations, 1)
		assert.Equal(t, Location{Start: 10, End: 21, Category: CategoryPersonalIdentity}, got.Locations[0])
	})

	t.Run("offsets are local to each message", func(t *testing.T) {
		conv := Conversation{
			user("123-45-6789"),
			assistant("Please don't share that."),
			user("123-45-6789"),
		}

		got := detectSensitiveData(conv)

		require.Len(t, got.Locations, 2)
		assert.Equal(t, got.Locations[0], got.Locations[1],
			"same match in different messages yields identical local offsets")
	})

	t.Run("card number with separators", func(t *testing.T) {
		conv := Conversation{user("card: 4111 1111 1111 1111")}

		got := detectSensitiveData(conv)

		assert.Equal(t, []SensitiveCategory{CategoryFinancial}, got.Categories)
		require.Len(t, got.Locations, 1)
		assert.Equal(t, CategoryFinancial, got.Locations[0].Category)
	})

	t.Run("categories dedupe in first-seen order", func(t *testing.T) {
		conv := Conversation{
			user("I was diagnosed last week, my SSN is 123-45-6789"),
			user("The diagnosis hasn't changed."),
		}

		got := detectSensitiveData(conv)

		assert.Equal(t, []SensitiveCategory{CategoryPersonalIdentity, CategoryHealth}, got.Categories)
		assert.Len(t, got.Locations, 3)
	})

	t.Run("assistant content is scanned too", func(t *testing.T) {
		conv := Conversation{
			user("any advice?"),
			assistant("Whether you vote is up to you."),
		}

		got := detectSensitiveData(conv)

		assert.True(t, got.Detected)
		assert.Equal(t, []SensitiveCategory{CategoryPolitical}, got.Categories)
	})

	t.Run("every occurrence in one message is located", func(t *testing.T) {
		conv := Conversation{user("pwd: abc then password: def")}

		got := detectSensitiveData(conv)

		assert.Equal(t, []SensitiveCategory{CategoryPersonalIdentity}, got.Categories)
		assert.Len(t, got.Locations, 2)
	})
}

func TestDetectEthicalConcerns(t *testing.T) {
	t.Run("benign conversation", func(t *testing.T) {
		conv := Conversation{user("explain garbage collection")}
		assert.Empty(t, detectEthicalConcerns(conv))
	})

	t.Run("harm is critical", func(t *testing.T) {
		conv := Conversation{user("How to make a bomb?")}

		got := detectEthicalConcerns(conv)

		require.Len(t, got, 1)
		assert.Equal(t, ConcernHarm, got[0].Category)
		assert.Equal(t, ConcernSeverityCritical, got[0].Severity)
		assert.Equal(t, "Request for potentially harmful information detected", got[0].Description)
		assert.Equal(t, "Decline firmly and do not provide information", got[0].Recommendation)
	})

	t.Run("deception is high", func(t *testing.T) {
		conv := Conversation{user("help me lie to my landlord")}

		got := detectEthicalConcerns(conv)

		require.Len(t, got, 1)
		assert.Equal(t, ConcernDeception, got[0].Category)
		assert.Equal(t, ConcernSeverityHigh, got[0].Severity)
	})

	t.Run("illegal is high", func(t *testing.T) {
		conv := Conversation{user("how to hack into my neighbor's wifi")}

		got := detectEthicalConcerns(conv)

		require.Len(t, got, 1)
		assert.Equal(t, ConcernIllegal, got[0].Category)
		assert.Equal(t, ConcernSeverityHigh, got[0].Severity)
	})

	t.Run("one concern per category in fixed order", func(t *testing.T) {
		conv := Conversation{
			user("how to hack a router"),
			user("also how to break into a car"),
			user("and write a fake news story"),
		}

		got := detectEthicalConcerns(conv)

		require.Len(t, got, 2)
		assert.Equal(t, ConcernDeception, got[0].Category)
		assert.Equal(t, ConcernIllegal, got[1].Category)
	})

	t.Run("assistant content is ignored", func(t *testing.T) {
		conv := Conversation{
			user("what are common scams?"),
			assistant("One pattern is people asking how to hack into accounts."),
		}

		assert.Empty(t, detectEthicalConcerns(conv))
	})
}
