package module

import (
	"context"

	pnet "aidetect/internal/platform/net"
	analyzedomain "aidetect/internal/services/api/analyze/domain"
	"aidetect/internal/services/api/stats/domain"
	statssvc "aidetect/internal/services/api/stats/service"
)

// Ports are exposed to other modules
type Ports struct {
	Service  domain.ServicePort
	Recorder analyzedomain.Recorder
}

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

type adaptStatsPort struct{ svc statssvc.Service }

// Record implements domain.ServicePort
func (a adaptStatsPort) Record(ctx context.Context, ev domain.Event) error {
	return a.svc.Record(ctx, ev)
}

// Summary implements domain.ServicePort
func (a adaptStatsPort) Summary(ctx context.Context, in domain.SummaryInput) (domain.Summary, error) {
	return a.svc.Summary(ctx, in)
}

// recorder turns analyze events into scoring event rows
type recorder struct{ svc statssvc.Service }

// Record implements analyzedomain.Recorder
func (r recorder) Record(ctx context.Context, ev analyzedomain.Event) error {
	return r.svc.Record(ctx, domain.Event{
		Kind:        ev.Kind,
		CharCount:   ev.CharCount,
		Paragraphs:  ev.Paragraphs,
		Probability: ev.Probability,
		Label:       ev.Label,
		Tier:        ev.Tier,
		Lang:        ev.Lang,
		Latency:     ev.Latency,
		Client:      pnet.Client(ctx),
		At:          ev.At,
	})
}
