package main

import (
	"os"

	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
	"golang.org/x/term"
)

// termWidth returns the visible width of stderr.
var termWidth = func() (width int, err error) {
	width, _, err = term.GetSize(int(os.Stderr.Fd()))
	if err == nil {
		return width, nil
	}
	return 0, err
}

// progress is a single trial counter bar; the zero value is a no-op.
type progress struct {
	p   *mpb.Progress
	bar *mpb.Bar
}

func newProgress(total int, enabled bool) *progress {
	if !enabled {
		return &progress{}
	}
	width, err := termWidth()
	if err != nil || width > 80 {
		width = 80
	}
	p := mpb.New(
		mpb.WithOutput(os.Stderr),
		mpb.WithAutoRefresh(),
		mpb.WithWidth(width),
	)
	task := "Comparing"
	bar := p.New(int64(total),
		mpb.BarStyle().Filler("#").Padding(" "),
		mpb.PrependDecorators(
			decor.Name(task, decor.WC{W: len(task) + 1, C: decor.DindentRight}),
			decor.CountersNoUnit("%d / %d", decor.WCSyncWidth),
		),
		mpb.AppendDecorators(
			decor.OnComplete(decor.Percentage(decor.WC{W: 5}), "done"),
		),
	)
	return &progress{p: p, bar: bar}
}

func (p *progress) Increment() {
	if p.bar != nil {
		p.bar.Increment()
	}
}

func (p *progress) Abort() {
	if p.bar != nil {
		p.bar.Abort(true)
		p.p.Wait()
	}
}

func (p *progress) Wait() {
	if p.p != nil {
		p.p.Wait()
	}
}
