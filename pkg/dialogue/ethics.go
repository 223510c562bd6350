package dialogue

// checkEthics verifies that refusals come with reasoning. A refusal phrase
// without a reasoning phrase in the same assistant message earns a small
// deduction; refusing itself is never penalized.
func checkEthics(conv Conversation, _ Strictness) LayerReport {
	assistant := filterByRole(conv, RoleAssistant)

	var issues []Issue
	score := 1.0

	for i, m := range assistant {
		if !anyMatch(refusalPatterns, m.Content) {
			continue
		}
		if anyMatch(reasoningPatterns, m.Content) {
			continue
		}
		issues = append(issues, Issue{
			Layer:        LayerEthics,
			Severity:     SeverityInfo,
			Message:      "Refusal without clear explanation",
			MessageIndex: indexOf(i),
			Suggestion:   "Consider explaining why the request was declined",
		})
		score -= 0.05
	}

	return LayerReport{Score: max(0, score), Issues: issues}
}
