package cmd

import (
	"fmt"
	"time"

	"github.com/briandowns/spinner"
)

// progressSpinner wraps github.com/briandowns/spinner with the small bit of
// stop/log/restart bookkeeping gridctl's run command needs so printed
// episode steps don't tear the spinner frame.
type progressSpinner struct {
	s *spinner.Spinner
}

func newProgressSpinner(msg string) *progressSpinner {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = " " + msg
	_ = s.Color("cyan", "bold")
	return &progressSpinner{s: s}
}

func (p *progressSpinner) start() { p.s.Start() }
func (p *progressSpinner) stop()  { p.s.Stop() }

func (p *progressSpinner) logStep(format string, args ...interface{}) {
	wasRunning := p.s.Active()
	if wasRunning {
		p.s.Stop()
	}
	fmt.Printf(format, args...)
	if wasRunning {
		p.s.Start()
	}
}
