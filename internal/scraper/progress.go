package scraper

import (
	"io"
	"os"

	"github.com/cheggaaa/pb/v3"
)

const progressTemplate pb.ProgressBarTemplate = `{{string . "prefix"}} {{counters . }} {{bar . }} {{percent . }}`

// pageProgress tracks fetched pages for one query. A nil writer disables it.
type pageProgress struct {
	bar *pb.ProgressBar
}

func newPageProgress(w io.Writer, prefix string) *pageProgress {
	if w == nil {
		return &pageProgress{}
	}
	bar := progressTemplate.New(0)
	bar.SetWriter(w)
	bar.Set("prefix", prefix)
	return &pageProgress{bar: bar}
}

func (p *pageProgress) start(total int) {
	if p.bar == nil {
		return
	}
	p.bar.SetTotal(int64(total))
	p.bar.Start()
}

func (p *pageProgress) setTotal(total int) {
	if p.bar == nil {
		return
	}
	p.bar.SetTotal(int64(total))
}

func (p *pageProgress) increment() {
	if p.bar == nil {
		return
	}
	p.bar.Increment()
}

func (p *pageProgress) finish() {
	if p.bar == nil || !p.bar.IsStarted() {
		return
	}
	p.bar.Finish()
}

// ProgressWriter returns where progress bars should be drawn
func ProgressWriter(quiet bool) io.Writer {
	if quiet {
		return nil
	}
	return os.Stderr
}
