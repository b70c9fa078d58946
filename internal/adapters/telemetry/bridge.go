package telemetry

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/compass/internal/core/ports"
)

// Bridge implements sdktrace.SpanProcessor by writing one debug line per finished span.
type Bridge struct {
	logger ports.Logger
}

// NewBridge returns a new Bridge.
func NewBridge(logger ports.Logger) *Bridge {
	return &Bridge{logger: logger}
}

// OnStart does nothing; spans are reported once they end.
func (b *Bridge) OnStart(_ context.Context, _ sdktrace.ReadWriteSpan) {}

// OnEnd is called when a span ends.
func (b *Bridge) OnEnd(s sdktrace.ReadOnlySpan) {
	if b.logger == nil || !s.SpanContext().IsValid() {
		return
	}
	b.logger.Debug(SpanLine(s.Name(), s.EndTime().Sub(s.StartTime()), spanAttributes(s), s.Status()))
}

// ForceFlush does nothing.
func (b *Bridge) ForceFlush(_ context.Context) error {
	return nil
}

// Shutdown does nothing.
func (b *Bridge) Shutdown(_ context.Context) error {
	return nil
}

// SpanLine renders a finished span, e.g. "backend.search_hotels 120ms fingerprint=ab12".
func SpanLine(name string, took time.Duration, attrs []string, status sdktrace.Status) string {
	var sb strings.Builder
	sb.WriteString(name)
	sb.WriteString(" ")
	sb.WriteString(took.Round(time.Millisecond).String())
	for _, a := range attrs {
		sb.WriteString(" ")
		sb.WriteString(a)
	}
	if status.Code == codes.Error {
		desc := status.Description
		if desc == "" {
			desc = "failed"
		}
		fmt.Fprintf(&sb, " error=%q", desc)
	}
	return sb.String()
}

func spanAttributes(s sdktrace.ReadOnlySpan) []string {
	kvs := s.Attributes()
	out := make([]string, 0, len(kvs))
	for _, kv := range kvs {
		out = append(out, string(kv.Key)+"="+kv.Value.Emit())
	}
	sort.Strings(out)
	return out
}
