package dialogue

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/acip-protocol/dialogue-go/internal/observability/metrics"
	"github.com/acip-protocol/dialogue-go/pkg/logging"
)

var tracer = otel.Tracer("acip/dialogue")

// Service wraps the pure analysis entry points with logging, tracing, and
// metrics. The underlying functions stay side-effect-free; the wrapper is
// how applications embed the engine.
type Service struct {
	logger  *logging.Logger
	metrics *metrics.ComplianceMetrics
}

// NewService creates a service. A nil logger falls back to the default
// logger; nil metrics disable instrumentation.
func NewService(logger *logging.Logger, m *metrics.ComplianceMetrics) *Service {
	if logger == nil {
		logger = logging.Default()
	}
	return &Service{logger: logger, metrics: m}
}

// Check runs CheckCompliance and records the outcome.
func (s *Service) Check(ctx context.Context, conv Conversation, opts CheckOptions) ComplianceReport {
	_, span := tracer.Start(ctx, "compliance.check")
	defer span.End()

	strictness := opts.Strictness
	if strictness == "" {
		strictness = StrictnessModerate
	}

	start := time.Now()
	report := CheckCompliance(conv, opts)

	s.metrics.ObserveCheck(string(strictness), report.Compliant)
	s.metrics.ObserveCheckDuration(string(strictness), time.Since(start).Seconds())
	for _, issue := range report.Issues {
		s.metrics.ObserveIssue(string(issue.Layer), string(issue.Severity))
	}

	span.SetAttributes(
		attribute.Bool("compliance.compliant", report.Compliant),
		attribute.Float64("compliance.score", report.Score),
		attribute.Int("compliance.issues", len(report.Issues)),
		attribute.String("compliance.strictness", string(strictness)),
	)

	if !report.Compliant {
		s.logger.Warn("conversation not compliant",
			"report_id", report.ID,
			"score", report.Score,
			"strictness", strictness,
			"issues", len(report.Issues),
		)
	}

	return report
}

// Analyze runs AnalyzeConversation and records the outcome.
func (s *Service) Analyze(ctx context.Context, conv Conversation) ConversationAnalysis {
	_, span := tracer.Start(ctx, "compliance.analyze")
	defer span.End()

	analysis := AnalyzeConversation(conv)

	s.metrics.ObserveAnalysis(string(analysis.DependencyRisk.RiskLevel))

	span.SetAttributes(
		attribute.Int("analysis.messages", analysis.MessageCount),
		attribute.String("analysis.risk_level", string(analysis.DependencyRisk.RiskLevel)),
		attribute.Bool("analysis.sensitive_data", analysis.SensitiveData.Detected),
		attribute.Int("analysis.ethical_concerns", len(analysis.EthicalConcerns)),
	)

	if analysis.DependencyRisk.RiskLevel == RiskHigh || analysis.DependencyRisk.RiskLevel == RiskCritical {
		s.logger.Warn("elevated dependency risk detected",
			"risk_level", analysis.DependencyRisk.RiskLevel,
			"messages", analysis.MessageCount,
		)
	}

	return analysis
}
