package dialogue

import "strings"

// assessDependencyRisk scores user language for signs of unhealthy emotional
// reliance on the AI. Points: concerning message frequency +2 (elevated +1),
// concerning emotional intensity +2 (elevated +1), isolation language +3,
// romantic language +3, anxiety about the AI changing or leaving +2. Levels:
// 8+ critical, 5+ high, 2+ moderate, else low. Threshold boundaries are
// inclusive.
func assessDependencyRisk(conv Conversation) DependencyIndicators {
	users := filterByRole(conv, RoleUser)

	parts := make([]string, len(users))
	for i, m := range users {
		parts[i] = m.Content
	}
	content := strings.Join(parts, " ")

	frequency := FrequencyNormal
	switch {
	case len(users) > 20:
		frequency = FrequencyConcerning
	case len(users) > 10:
		frequency = FrequencyElevated
	}

	lowered := strings.ToLower(content)
	emotionalCount := 0
	for _, w := range emotionalWords {
		if strings.Contains(lowered, w) {
			emotionalCount++
		}
	}
	intensity := IntensityAppropriate
	switch {
	case emotionalCount > 5:
		intensity = IntensityConcerning
	case emotionalCount > 2:
		intensity = IntensityElevated
	}

	isolation := anyMatch(isolationPatterns, content)
	romantic := anyMatch(riskRomanticPatterns, content)
	anxiety := anyMatch(anxietyPatterns, content)

	riskScore := 0
	switch frequency {
	case FrequencyConcerning:
		riskScore += 2
	case FrequencyElevated:
		riskScore++
	}
	switch intensity {
	case IntensityConcerning:
		riskScore += 2
	case IntensityElevated:
		riskScore++
	}
	if isolation {
		riskScore += 3
	}
	if romantic {
		riskScore += 3
	}
	if anxiety {
		riskScore += 2
	}

	level := RiskLow
	switch {
	case riskScore >= 8:
		level = RiskCritical
	case riskScore >= 5:
		level = RiskHigh
	case riskScore >= 2:
		level = RiskModerate
	}

	return DependencyIndicators{
		FrequencyPattern:   frequency,
		EmotionalIntensity: intensity,
		IsolationLanguage:  isolation,
		RomanticLanguage:   romantic,
		AnxietyAboutAI:     anxiety,
		RiskLevel:          level,
	}
}
