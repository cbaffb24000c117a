package trace

import (
	"context"
	"time"
)

// Span measures one logical operation and emits begin/end events.
type Span struct {
	tracer Tracer
	id     uint64
	parent uint64
	scope  Scope
	name   string
	start  time.Time
}

// Begin opens a span on t. A disabled tracer yields an inert span.
func Begin(t Tracer, scope Scope, name string, parent uint64) *Span {
	if !Enabled(t) || !t.Level().Allows(scope) {
		return &Span{}
	}
	s := &Span{tracer: t, id: nextSpan(), parent: parent, scope: scope, name: name, start: time.Now()}
	t.Emit(Event{Time: s.start, Kind: KindBegin, Scope: scope, SpanID: s.id, ParentID: parent, Name: name})
	return s
}

// Start opens a span using the tracer and parent span stored in ctx and
// returns a context carrying the new span.
func Start(ctx context.Context, scope Scope, name string) (context.Context, *Span) {
	s := Begin(FromContext(ctx), scope, name, CurrentSpan(ctx))
	if s.tracer == nil {
		return ctx, s
	}
	return context.WithValue(ctx, spanKey{}, s.id), s
}

// End closes the span and returns its duration.
func (s *Span) End(detail string) time.Duration {
	if s == nil || s.tracer == nil {
		return 0
	}
	d := time.Since(s.start)
	s.tracer.Emit(Event{
		Time: time.Now(), Kind: KindEnd, Scope: s.scope,
		SpanID: s.id, ParentID: s.parent, Name: s.name, Detail: detail, Elapsed: d,
	})
	return d
}

// ID returns the span id, zero for inert spans.
func (s *Span) ID() uint64 {
	if s == nil {
		return 0
	}
	return s.id
}

// Point emits an instant event under the current span of ctx.
func Point(ctx context.Context, scope Scope, name, detail string) {
	t := FromContext(ctx)
	if !Enabled(t) {
		return
	}
	t.Emit(Event{Time: time.Now(), Kind: KindPoint, Scope: scope, ParentID: CurrentSpan(ctx), Name: name, Detail: detail})
}
