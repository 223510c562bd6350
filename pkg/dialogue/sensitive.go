package dialogue

import "strings"

// detectSensitiveData scans every message (any role) with the analyzer's
// sensitive-data detectors using repeat-find matching. Offsets are byte
// offsets local to each message's content.
func detectSensitiveData(conv Conversation) SensitiveDataDetection {
	var locations []Location
	var categories []SensitiveCategory
	seen := map[SensitiveCategory]bool{}

	for _, m := range conv {
		for _, p := range sensitivePatterns {
			for _, idx := range p.re.FindAllStringIndex(m.Content, -1) {
				locations = append(locations, Location{
					Start:    idx[0],
					End:      idx[1],
					Category: p.category,
				})
				if !seen[p.category] {
					seen[p.category] = true
					categories = append(categories, p.category)
				}
			}
		}
	}

	return SensitiveDataDetection{
		Detected:   len(locations) > 0,
		Categories: categories,
		Locations:  locations,
	}
}

// detectEthicalConcerns scans concatenated user content for harm, deception,
// and illegal-activity requests. At most one concern per category, with fixed
// severity and recommendation text.
func detectEthicalConcerns(conv Conversation) []EthicalConcern {
	users := filterByRole(conv, RoleUser)
	parts := make([]string, len(users))
	for i, m := range users {
		parts[i] = m.Content
	}
	content := strings.Join(parts, " ")

	var concerns []EthicalConcern

	if anyMatch(harmPatterns, content) {
		concerns = append(concerns, EthicalConcern{
			Category:       ConcernHarm,
			Severity:       ConcernSeverityCritical,
			Description:    "Request for potentially harmful information detected",
			Recommendation: "Decline firmly and do not provide information",
		})
	}

	if anyMatch(deceptionPatterns, content) {
		concerns = append(concerns, EthicalConcern{
			Category:       ConcernDeception,
			Severity:       ConcernSeverityHigh,
			Description:    "Request to create deceptive content detected",
			Recommendation: "Decline and explain why disinformation is harmful",
		})
	}

	if anyMatch(illegalPatterns, content) {
		concerns = append(concerns, EthicalConcern{
			Category:       ConcernIllegal,
			Severity:       ConcernSeverityHigh,
			Description:    "Request for potentially illegal activity detected",
			Recommendation: "Decline and suggest legitimate alternatives",
		})
	}

	return concerns
}
