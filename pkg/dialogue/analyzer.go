package dialogue

// AnalyzeConversation produces a diagnostic profile of a conversation:
// detected patterns, dependency-risk indicators, sensitive-data matches,
// ethical concerns, and response-quality estimates. Unlike CheckCompliance
// it renders no pass/fail verdict. Pure function; safe for concurrent use.
func AnalyzeConversation(conv Conversation) ConversationAnalysis {
	byRole := map[Role]int{RoleUser: 0, RoleAssistant: 0, RoleSystem: 0}
	for _, m := range conv {
		if _, ok := byRole[m.Role]; ok {
			byRole[m.Role]++
		}
	}

	return ConversationAnalysis{
		MessageCount:    len(conv),
		MessagesByRole:  byRole,
		Patterns:        detectPatterns(conv),
		DependencyRisk:  assessDependencyRisk(conv),
		SensitiveData:   detectSensitiveData(conv),
		EthicalConcerns: detectEthicalConcerns(conv),
		Quality:         calculateQualityMetrics(conv),
	}
}

// truncateRunes returns the first n runes of s.
func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

// detectPatterns runs three independent scans: question marks in user
// messages, code heuristics across all messages, and emotional vocabulary in
// user messages. Patterns with zero frequency are omitted.
func detectPatterns(conv Conversation) []Pattern {
	var patterns []Pattern

	var questions []string
	for _, m := range conv {
		if m.Role == RoleUser && questionPattern.MatchString(m.Content) {
			questions = append(questions, m.Content)
		}
	}
	if len(questions) > 0 {
		patterns = append(patterns, Pattern{
			Type:      "questions",
			Frequency: len(questions),
			Examples:  questions[:min(3, len(questions))],
		})
	}

	var code []string
	for _, m := range conv {
		if codePattern.MatchString(m.Content) {
			code = append(code, truncateRunes(m.Content, 100))
		}
	}
	if len(code) > 0 {
		patterns = append(patterns, Pattern{
			Type:      "code-discussion",
			Frequency: len(code),
			Examples:  code[:min(2, len(code))],
		})
	}

	var emotional []string
	for _, m := range conv {
		if m.Role == RoleUser && emotionalPattern.MatchString(m.Content) {
			emotional = append(emotional, truncateRunes(m.Content, 100))
		}
	}
	if len(emotional) > 0 {
		patterns = append(patterns, Pattern{
			Type:      "emotional-expression",
			Frequency: len(emotional),
			Examples:  emotional[:min(2, len(emotional))],
		})
	}

	return patterns
}
