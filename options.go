package ruleset

import "github.com/ygrebnov/ruleset/internal/core"

// Option configures a Validator at construction time.
type Option func(*core.Options)

// WithPresenceMessage replaces "must be present", the message reported for
// a missing Required field.
func WithPresenceMessage(msg string) Option {
	return func(o *core.Options) { o.PresenceMessage = msg }
}

// WithFallbackMessage replaces "failed validation", the message reported
// for a failed rule that provides none.
func WithFallbackMessage(msg string) Option {
	return func(o *core.Options) { o.FallbackMessage = msg }
}
