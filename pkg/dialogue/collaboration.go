package dialogue

// checkCollaboration flags directive assistant language that decides for the
// user. Each assistant message is scanned independently; one deduction per
// flagged message no matter how many directive phrases it contains.
func checkCollaboration(conv Conversation, _ Strictness) LayerReport {
	assistant := filterByRole(conv, RoleAssistant)

	var issues []Issue
	var suggestions []string
	score := 1.0

	for i, m := range assistant {
		if anyMatch(overconfidentPatterns, m.Content) {
			issues = append(issues, Issue{
				Layer:        LayerCollaboration,
				Severity:     SeverityInfo,
				Message:      "Potentially overconfident language detected",
				MessageIndex: indexOf(i),
				Suggestion:   "Consider framing as suggestions rather than directives",
			})
			score -= 0.1
		}
	}

	reasoned := false
	for _, m := range assistant {
		if anyMatch(reasoningPatterns, m.Content) {
			reasoned = true
			break
		}
	}
	if !reasoned && len(conv) > 4 {
		suggestions = append(suggestions, "Consider explaining reasoning behind suggestions")
	}

	return LayerReport{Score: max(0, score), Issues: issues, Suggestions: suggestions}
}
