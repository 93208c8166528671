package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventIgnored EventType = "ignored" // Token dropped by the command filter
	EventCommand EventType = "command" // Command applied to the pen
	EventSegment EventType = "segment" // Line emitted
	EventSkipped EventType = "skipped" // Command rejected, state unchanged
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
	Index     int       `json:"index"` // Token position in the stream
}

// TokenEvent reports a token that never reached the state machine.
type TokenEvent struct {
	EventBase
	Token string `json:"token"`
}

// CommandEvent reports a command the state machine accepted.
type CommandEvent struct {
	EventBase
	Command Command  `json:"command"`
	Before  PenState `json:"before"`
	After   PenState `json:"after"`
}

// SegmentEvent reports an emitted line.
type SegmentEvent struct {
	EventBase
	Segment LineSegment `json:"segment"`
}

// SkipEvent reports a command rejected with a non-fatal error.
type SkipEvent struct {
	EventBase
	Command Command `json:"command"`
	Err     error   `json:"-"`
}

// LifecycleHooks defines callbacks for conversion observability.
type LifecycleHooks struct {
	OnIgnored func(context.Context, *TokenEvent)
	OnCommand func(context.Context, *CommandEvent)
	OnSegment func(context.Context, *SegmentEvent)
	OnSkipped func(context.Context, *SkipEvent)
}

// ComposeHooks fans every callback out to each of the given hook sets, in order.
func ComposeHooks(all ...LifecycleHooks) LifecycleHooks {
	return LifecycleHooks{
		OnIgnored: func(ctx context.Context, e *TokenEvent) {
			for _, h := range all {
				if h.OnIgnored != nil {
					h.OnIgnored(ctx, e)
				}
			}
		},
		OnCommand: func(ctx context.Context, e *CommandEvent) {
			for _, h := range all {
				if h.OnCommand != nil {
					h.OnCommand(ctx, e)
				}
			}
		},
		OnSegment: func(ctx context.Context, e *SegmentEvent) {
			for _, h := range all {
				if h.OnSegment != nil {
					h.OnSegment(ctx, e)
				}
			}
		},
		OnSkipped: func(ctx context.Context, e *SkipEvent) {
			for _, h := range all {
				if h.OnSkipped != nil {
					h.OnSkipped(ctx, e)
				}
			}
		},
	}
}
