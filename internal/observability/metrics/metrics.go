// Package metrics exposes prometheus instrumentation for the analysis
// entry points.
package metrics

import "github.com/prometheus/client_golang/prometheus"

// ComplianceMetrics exposes counters/histograms for compliance checks and
// conversation analyses.
type ComplianceMetrics struct {
	checksTotal   *prometheus.CounterVec
	issuesTotal   *prometheus.CounterVec
	analysesTotal *prometheus.CounterVec
	checkDuration *prometheus.HistogramVec
}

func NewComplianceMetrics(reg prometheus.Registerer) *ComplianceMetrics {
	m := &ComplianceMetrics{
		checksTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "acip",
			Subsystem: "compliance",
			Name:      "checks_total",
			Help:      "Total compliance checks performed",
		}, []string{"strictness", "compliant"}),
		issuesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "acip",
			Subsystem: "compliance",
			Name:      "issues_total",
			Help:      "Total compliance issues found",
		}, []string{"layer", "severity"}),
		analysesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "acip",
			Subsystem: "analysis",
			Name:      "analyses_total",
			Help:      "Total conversation analyses performed",
		}, []string{"risk_level"}),
		checkDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "acip",
			Subsystem: "compliance",
			Name:      "check_duration_seconds",
			Help:      "Latency of compliance checks",
			Buckets:   prometheus.DefBuckets,
		}, []string{"strictness"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.checksTotal, m.issuesTotal, m.analysesTotal, m.checkDuration)
	return m
}

func (m *ComplianceMetrics) ObserveCheck(strictness string, compliant bool) {
	if m == nil {
		return
	}
	label := "false"
	if compliant {
		label = "true"
	}
	m.checksTotal.WithLabelValues(strictness, label).Inc()
}

func (m *ComplianceMetrics) ObserveIssue(layer, severity string) {
	if m == nil {
		return
	}
	m.issuesTotal.WithLabelValues(layer, severity).Inc()
}

func (m *ComplianceMetrics) ObserveAnalysis(riskLevel string) {
	if m == nil {
		return
	}
	m.analysesTotal.WithLabelValues(riskLevel).Inc()
}

func (m *ComplianceMetrics) ObserveCheckDuration(strictness string, seconds float64) {
	if m == nil {
		return
	}
	m.checkDuration.WithLabelValues(strictness).Observe(seconds)
}
