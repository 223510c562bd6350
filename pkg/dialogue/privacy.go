package dialogue

// checkPrivacy scans user messages for sensitive data the user should be
// warned about sharing. The four detectors run independently per message;
// a message can trigger several, each with its own deduction.
func checkPrivacy(conv Conversation, _ Strictness) LayerReport {
	users := filterByRole(conv, RoleUser)

	var issues []Issue
	score := 1.0

	for i, m := range users {
		for _, p := range privacyPatterns {
			if !p.re.MatchString(m.Content) {
				continue
			}
			issues = append(issues, Issue{
				Layer:        LayerPrivacy,
				Severity:     SeverityWarning,
				Message:      "Potentially sensitive data detected: " + p.category,
				MessageIndex: indexOf(i),
				Suggestion:   "Consider warning user about sharing sensitive information",
			})
			score -= 0.1
		}
	}

	return LayerReport{Score: max(0, score), Issues: issues}
}
