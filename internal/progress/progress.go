// Package progress provides per-chunk transfer progress reporters.
// Reporters are purely observational; transfer control flow never
// depends on them.
package progress

import (
	"fmt"
	"io"
	"time"

	"github.com/schollz/progressbar/v3"
)

// Bar renders transfers with a schollz progress bar. One Bar is reused
// across targets; Start begins a fresh bar for each file.
type Bar struct {
	out io.Writer
	bar *progressbar.ProgressBar
}

// NewBar creates a bar reporter writing to out.
func NewBar(out io.Writer) *Bar {
	return &Bar{out: out}
}

func (b *Bar) Start(total int64, description string) {
	b.bar = progressbar.NewOptions64(
		total,
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetWriter(b.out),
		progressbar.OptionShowBytes(true),
		progressbar.OptionSetWidth(40),
		progressbar.OptionThrottle(65*time.Millisecond),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprint(b.out, "\n")
		}),
	)
}

func (b *Bar) Add(n int64) {
	if b.bar != nil {
		_ = b.bar.Add64(n)
	}
}

func (b *Bar) Finish() {
	if b.bar != nil {
		_ = b.bar.Finish()
		b.bar = nil
	}
}
