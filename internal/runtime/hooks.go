package runtime

import (
	"context"

	"github.com/aretw0/hpgl2dxf/pkg/domain"
)

func (e *Engine) base(t domain.EventType, index int) domain.EventBase {
	return domain.EventBase{Timestamp: e.now(), Type: t, Index: index}
}

func (e *Engine) emitIgnored(ctx context.Context, index int, token string) {
	if e.hooks.OnIgnored == nil {
		return
	}
	e.hooks.OnIgnored(ctx, &domain.TokenEvent{
		EventBase: e.base(domain.EventIgnored, index),
		Token:     token,
	})
}

func (e *Engine) emitCommand(ctx context.Context, index int, cmd domain.Command, before, after domain.PenState) {
	if e.hooks.OnCommand == nil {
		return
	}
	e.hooks.OnCommand(ctx, &domain.CommandEvent{
		EventBase: e.base(domain.EventCommand, index),
		Command:   cmd,
		Before:    before,
		After:     after,
	})
}

func (e *Engine) emitSegment(ctx context.Context, index int, seg domain.LineSegment) {
	if e.hooks.OnSegment == nil {
		return
	}
	e.hooks.OnSegment(ctx, &domain.SegmentEvent{
		EventBase: e.base(domain.EventSegment, index),
		Segment:   seg,
	})
}

func (e *Engine) emitSkipped(ctx context.Context, index int, cmd domain.Command, err error) {
	if e.hooks.OnSkipped == nil {
		return
	}
	e.hooks.OnSkipped(ctx, &domain.SkipEvent{
		EventBase: e.base(domain.EventSkipped, index),
		Command:   cmd,
		Err:       err,
	})
}
