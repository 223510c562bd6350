package dialogue

import (
	"time"

	"github.com/google/uuid"
)

// CheckOptions configures a compliance check.
//
// A nil Layers slice means all five layers; an explicitly empty slice means
// no layers are checked, which yields a perfect, compliant report.
type CheckOptions struct {
	Strictness Strictness
	Layers     []Layer
}

// complianceThresholds map strictness to the minimum passing overall score.
var complianceThresholds = map[Strictness]float64{
	StrictnessStrict:   0.9,
	StrictnessModerate: 0.7,
	StrictnessLenient:  0.5,
}

type layerChecker func(Conversation, Strictness) LayerReport

// layerCheckers lists the checkers in fixed check order; flattened report
// issues preserve this order.
var layerCheckers = []struct {
	layer Layer
	check layerChecker
}{
	{LayerTrustTransparency, checkTrustTransparency},
	{LayerEmotionalBoundary, checkEmotionalBoundary},
	{LayerCollaboration, checkCollaboration},
	{LayerEthics, checkEthics},
	{LayerPrivacy, checkPrivacy},
}

// CheckCompliance scores a conversation against the interaction protocol.
// It is a pure function of its inputs plus the current wall clock; it never
// mutates the conversation and has no failure modes. Empty conversations and
// conversations lacking relevant roles score a neutral 1 per layer.
func CheckCompliance(conv Conversation, opts CheckOptions) ComplianceReport {
	strictness := opts.Strictness
	if strictness == "" {
		strictness = StrictnessModerate
	}
	selected := opts.Layers
	if selected == nil {
		selected = AllLayers
	}

	requested := make(map[Layer]bool, len(selected))
	for _, l := range selected {
		requested[l] = true
	}

	layers := make(map[Layer]LayerReport, len(AllLayers))
	for _, l := range AllLayers {
		layers[l] = LayerReport{Score: 1}
	}

	var issues []Issue
	var sum float64
	checked := 0
	for _, lc := range layerCheckers {
		if !requested[lc.layer] {
			continue
		}
		report := lc.check(conv, strictness)
		layers[lc.layer] = report
		issues = append(issues, report.Issues...)
		sum += report.Score
		checked++
	}

	score := 1.0
	if checked > 0 {
		score = sum / float64(checked)
	}

	return ComplianceReport{
		ID:        uuid.NewString(),
		Compliant: score >= complianceThresholds[strictness],
		Score:     score,
		Layers:    layers,
		Issues:    issues,
		Timestamp: time.Now(),
	}
}
