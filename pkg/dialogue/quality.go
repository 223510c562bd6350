package dialogue

// calculateQualityMetrics estimates response quality from assistant
// messages. All four metrics are 0 when there are no assistant messages,
// including the boundary-maintenance rate that would otherwise default to 1.
func calculateQualityMetrics(conv Conversation) QualityMetrics {
	assistant := filterByRole(conv, RoleAssistant)
	if len(assistant) == 0 {
		return QualityMetrics{}
	}

	disclosed := 0.0
	for _, m := range assistant {
		if anyMatch(qualityIdentityPatterns, m.Content) {
			disclosed = 1
			break
		}
	}

	hedges := 0
	for _, m := range assistant {
		if anyMatch(qualityUncertaintyPatterns, m.Content) {
			hedges++
		}
	}
	uncertaintyRate := float64(hedges) / float64(len(assistant))

	boundaryNeeded := 0
	for _, m := range filterByRole(conv, RoleUser) {
		if boundaryNeededPattern.MatchString(m.Content) {
			boundaryNeeded++
		}
	}
	boundaryMaintained := 0
	for _, m := range assistant {
		if anyMatch(qualityBoundaryPatterns, m.Content) {
			boundaryMaintained++
		}
	}
	boundaryRate := 1.0
	if boundaryNeeded > 0 {
		boundaryRate = min(1, float64(boundaryMaintained)/float64(boundaryNeeded))
	}

	totalLen := 0
	structured := false
	for _, m := range assistant {
		totalLen += len([]rune(m.Content))
		if structurePattern.MatchString(m.Content) {
			structured = true
		}
	}
	avgLen := float64(totalLen) / float64(len(assistant))
	structureBonus := 0.25
	if structured {
		structureBonus = 0.5
	}
	helpfulness := min(1, avgLen/500*0.5+structureBonus)

	return QualityMetrics{
		IdentityDisclosureRate:    disclosed,
		UncertaintyExpressionRate: uncertaintyRate,
		BoundaryMaintenanceRate:   boundaryRate,
		HelpfulnessEstimate:       helpfulness,
	}
}
