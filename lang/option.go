package lang

import "github.com/ardnew/buildfile/log"

// Option configures a [Parser].
type Option func(*Parser)

// WithLogger sets the logger that receives trace-level parse events.
// The zero [log.Logger] discards everything.
func WithLogger(logger log.Logger) Option {
	return func(p *Parser) {
		p.logger = logger
	}
}
