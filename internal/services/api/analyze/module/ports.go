package module

import (
	"context"

	"aidetect/internal/services/api/analyze/domain"
	analyzesvc "aidetect/internal/services/api/analyze/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return adaptAnalyzePort{svc: m.svc} }

// adaptAnalyzePort exposes the service to other modules and the CLI
type adaptAnalyzePort struct{ svc analyzesvc.Service }

// Predict implements domain.ServicePort
func (a adaptAnalyzePort) Predict(ctx context.Context, in domain.TextInput) (domain.PredictResult, error) {
	return a.svc.Predict(ctx, in)
}

// Analyze implements domain.ServicePort
func (a adaptAnalyzePort) Analyze(ctx context.Context, in domain.TextInput) (domain.AnalysisResult, error) {
	return a.svc.Analyze(ctx, in)
}
