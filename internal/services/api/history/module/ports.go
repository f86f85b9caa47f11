package module

import (
	"context"

	pnet "aidetect/internal/platform/net"
	analyzedomain "aidetect/internal/services/api/analyze/domain"
	"aidetect/internal/services/api/history/domain"
	historysvc "aidetect/internal/services/api/history/service"
)

// Ports are exposed to other modules
// Recorder plugs into analyze so every successful request lands in history
type Ports struct {
	Service  domain.ServicePort
	Recorder analyzedomain.Recorder
}

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

type adaptHistoryPort struct{ svc historysvc.Service }

// Add implements domain.ServicePort
func (a adaptHistoryPort) Add(ctx context.Context, e domain.Entry) (domain.Entry, error) {
	return a.svc.Add(ctx, e)
}

// List implements domain.ServicePort
func (a adaptHistoryPort) List(ctx context.Context, in domain.ListInput) (domain.ListResult, error) {
	return a.svc.List(ctx, in)
}

// Clear implements domain.ServicePort
func (a adaptHistoryPort) Clear(ctx context.Context) (domain.ClearResult, error) {
	return a.svc.Clear(ctx)
}

// recorder turns analyze events into history entries
type recorder struct{ svc historysvc.Service }

// Record implements analyzedomain.Recorder
func (r recorder) Record(ctx context.Context, ev analyzedomain.Event) error {
	_, err := r.svc.Add(ctx, domain.Entry{
		Kind:             ev.Kind,
		Preview:          ev.Preview,
		CharCount:        ev.CharCount,
		Probability:      ev.Probability,
		Label:            ev.Label,
		Tier:             ev.Tier,
		Paragraphs:       ev.Paragraphs,
		ParagraphAverage: ev.ParagraphAverage,
		Client:           pnet.Client(ctx),
		CreatedAt:        ev.At,
	})
	return err
}
