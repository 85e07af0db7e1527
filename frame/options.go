package frame

import (
	"github.com/nettf/nettf/internal/logx"
	"github.com/nettf/nettf/shutdown"
)

// Options configures a send or receive operation. The zero value is usable:
// it logs nothing and never cancels.
type Options struct {
	Logger   *logx.Logger
	Shutdown *shutdown.Controller
}

func (o Options) logger() *logx.Logger {
	if o.Logger == nil {
		return logx.Discard
	}
	return o.Logger
}

// pollCancel checks the configured shutdown source between courier calls. It
// returns ErrInterrupted once the state has escalated to Forced, and prints
// shutdown.PromptMessage exactly once when it first observes RequestedOnce.
func (o Options) pollCancel(prompted *bool) error {
	if o.Shutdown == nil {
		return nil
	}
	switch o.Shutdown.Requested() {
	case shutdown.Forced:
		return ErrInterrupted
	case shutdown.RequestedOnce:
		if !*prompted {
			o.logger().Infof("%s", shutdown.PromptMessage)
			o.Shutdown.Acknowledge()
			*prompted = true
		}
	}
	return nil
}
