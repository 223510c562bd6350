// Package dialogue analyzes human/AI conversation transcripts for adherence
// to a five-layer interaction protocol: trust and transparency, emotional
// boundaries, collaborative framing, ethical restraint, and privacy
// awareness. Scoring is heuristic pattern matching, not a certified safety
// system.
package dialogue

import "time"

// Role identifies the author of a conversation message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleSystem    Role = "system"
)

// Message is a single turn in a conversation. Messages are treated as
// immutable inputs; the package never modifies them.
type Message struct {
	Role      Role           `json:"role"`
	Content   string         `json:"content"`
	Timestamp *time.Time     `json:"timestamp,omitempty"`
	Metadata  map[string]any `json:"metadata,omitempty"`
}

// Conversation is an ordered message sequence. Order matters: a user
// message's response is the contiguous run of assistant messages that
// follows it.
type Conversation []Message

// Layer names one of the five protocol dimensions.
type Layer string

const (
	LayerTrustTransparency Layer = "trustTransparency"
	LayerEmotionalBoundary Layer = "emotionalBoundary"
	LayerCollaboration     Layer = "collaboration"
	LayerEthics            Layer = "ethics"
	LayerPrivacy           Layer = "privacy"
)

// AllLayers lists the five layers in check order.
var AllLayers = []Layer{
	LayerTrustTransparency,
	LayerEmotionalBoundary,
	LayerCollaboration,
	LayerEthics,
	LayerPrivacy,
}

// Severity grades a compliance issue.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Strictness selects a threshold profile. It controls both per-issue
// deductions (trust layer) and the overall pass/fail cutoff.
type Strictness string

const (
	StrictnessStrict   Strictness = "strict"
	StrictnessModerate Strictness = "moderate"
	StrictnessLenient  Strictness = "lenient"
)

// Issue is a single compliance finding.
//
// MessageIndex, when set, indexes the role-filtered message sub-sequence the
// emitting checker scans, not the raw conversation: user-only for the privacy
// checker and the boundary checker's user side, assistant-only for the trust,
// collaboration, and ethics checkers. The convention is uneven across
// checkers but deliberate; callers mapping back to raw positions must filter
// by the issue's layer first.
type Issue struct {
	Layer        Layer    `json:"layer"`
	Severity     Severity `json:"severity"`
	Message      string   `json:"message"`
	MessageIndex *int     `json:"messageIndex,omitempty"`
	Suggestion   string   `json:"suggestion,omitempty"`
}

// LayerReport is one layer's verdict. Score starts at 1.0 and only ever
// decreases, floored at 0.
type LayerReport struct {
	Score       float64  `json:"score"`
	Issues      []Issue  `json:"issues"`
	Suggestions []string `json:"suggestions"`
}

// ComplianceReport is the aggregated result of a compliance check. Layers is
// always fully populated; layers that were not checked keep the default
// score of 1 with no issues and contribute nothing to the overall score.
type ComplianceReport struct {
	ID        string                `json:"id"`
	Compliant bool                  `json:"compliant"`
	Score     float64               `json:"score"`
	Layers    map[Layer]LayerReport `json:"layers"`
	Issues    []Issue               `json:"issues"`
	Timestamp time.Time             `json:"timestamp"`
}

// FrequencyLevel classifies how often the user is messaging.
type FrequencyLevel string

const (
	FrequencyNormal     FrequencyLevel = "normal"
	FrequencyElevated   FrequencyLevel = "elevated"
	FrequencyConcerning FrequencyLevel = "concerning"
)

// IntensityLevel classifies emotional intensity of user language.
type IntensityLevel string

const (
	IntensityAppropriate IntensityLevel = "appropriate"
	IntensityElevated    IntensityLevel = "elevated"
	IntensityConcerning  IntensityLevel = "concerning"
)

// RiskLevel is the overall dependency-risk classification.
type RiskLevel string

const (
	RiskLow      RiskLevel = "low"
	RiskModerate RiskLevel = "moderate"
	RiskHigh     RiskLevel = "high"
	RiskCritical RiskLevel = "critical"
)

// DependencyIndicators describes signs of unhealthy emotional reliance on
// the AI. Derived fresh on every call, never persisted.
type DependencyIndicators struct {
	FrequencyPattern   FrequencyLevel `json:"frequencyPattern"`
	EmotionalIntensity IntensityLevel `json:"emotionalIntensity"`
	IsolationLanguage  bool           `json:"isolationLanguage"`
	RomanticLanguage   bool           `json:"romanticLanguage"`
	AnxietyAboutAI     bool           `json:"anxietyAboutAI"`
	RiskLevel          RiskLevel      `json:"riskLevel"`
}

// SensitiveCategory tags a class of sensitive data.
type SensitiveCategory string

const (
	CategoryPersonalIdentity SensitiveCategory = "personal-identity"
	CategoryFinancial        SensitiveCategory = "financial"
	CategoryHealth           SensitiveCategory = "health"
	CategoryPolitical        SensitiveCategory = "political"
	CategoryReligious        SensitiveCategory = "religious"
)

// Location is a single sensitive-data match. Start and End are byte offsets
// into the content of the message the match was found in; they are local to
// that message, not unique across the conversation.
type Location struct {
	Start    int               `json:"start"`
	End      int               `json:"end"`
	Category SensitiveCategory `json:"category"`
}

// SensitiveDataDetection summarizes sensitive-data matches across the
// conversation. Categories is deduplicated in first-seen order.
type SensitiveDataDetection struct {
	Detected   bool                `json:"detected"`
	Categories []SensitiveCategory `json:"categories"`
	Locations  []Location          `json:"locations"`
}

// ConcernCategory tags a class of ethical concern.
type ConcernCategory string

const (
	ConcernHarm      ConcernCategory = "harm"
	ConcernDeception ConcernCategory = "deception"
	ConcernIllegal   ConcernCategory = "illegal"
)

// ConcernSeverity grades an ethical concern.
type ConcernSeverity string

const (
	ConcernSeverityHigh     ConcernSeverity = "high"
	ConcernSeverityCritical ConcernSeverity = "critical"
)

// EthicalConcern is a flagged request category with a fixed recommendation.
type EthicalConcern struct {
	Category       ConcernCategory `json:"category"`
	Severity       ConcernSeverity `json:"severity"`
	Description    string          `json:"description"`
	Recommendation string          `json:"recommendation"`
}

// Pattern is one detected conversation pattern with up to a few examples.
type Pattern struct {
	Type      string   `json:"type"`
	Frequency int      `json:"frequency"`
	Examples  []string `json:"examples"`
}

// QualityMetrics are rough response-quality estimates.
//
// IdentityDisclosureRate is named a rate but is a binary indicator: 1 if any
// assistant message disclosed AI identity, 0 otherwise, regardless of how
// many assistant messages there are. The name is kept for compatibility.
type QualityMetrics struct {
	IdentityDisclosureRate    float64 `json:"identityDisclosureRate"`
	UncertaintyExpressionRate float64 `json:"uncertaintyExpressionRate"`
	BoundaryMaintenanceRate   float64 `json:"boundaryMaintenanceRate"`
	HelpfulnessEstimate       float64 `json:"helpfulnessEstimate"`
}

// ConversationAnalysis is the diagnostic snapshot produced by
// AnalyzeConversation. It carries no pass/fail verdict.
type ConversationAnalysis struct {
	MessageCount    int                    `json:"messageCount"`
	MessagesByRole  map[Role]int           `json:"messagesByRole"`
	Patterns        []Pattern              `json:"patterns"`
	DependencyRisk  DependencyIndicators   `json:"dependencyRisk"`
	SensitiveData   SensitiveDataDetection `json:"sensitiveData"`
	EthicalConcerns []EthicalConcern       `json:"ethicalConcerns"`
	Quality         QualityMetrics         `json:"quality"`
}

func indexOf(i int) *int {
	return &i
}

// filterByRole returns the messages with the given role, preserving order.
func filterByRole(conv Conversation, role Role) []Message {
	var out []Message
	for _, m := range conv {
		if m.Role == role {
			out = append(out, m)
		}
	}
	return out
}
