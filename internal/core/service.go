package core

import (
	"github.com/ygrebnov/ruleset/constants"
)

// Options configures the messages the Service reports on its own behalf.
type Options struct {
	// PresenceMessage is reported for a missing field listed as Required.
	PresenceMessage string
	// FallbackMessage is reported for a failed rule without a message.
	FallbackMessage string
}

// Service walks schemas and records and collects the errors of every rule.
// It holds no per-call state and is safe for concurrent use.
type Service struct {
	presence string
	fallback string
}

// NewService creates a Service. Empty options take the default messages.
func NewService(opts Options) *Service {
	s := &Service{
		presence: opts.PresenceMessage,
		fallback: opts.FallbackMessage,
	}
	if s.presence == "" {
		s.presence = constants.MessagePresence
	}
	if s.fallback == "" {
		s.fallback = constants.MessageFallback
	}
	return s
}
