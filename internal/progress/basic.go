package progress

import (
	"fmt"
	"io"
	"runtime"
	"strings"
)

const basicBarLength = 75

// Basic is the plain carriage-return progress line: a block bar plus an
// integer percentage, redrawn after every chunk. Used when basic output
// mode is enabled or the fancier bar is unwanted.
type Basic struct {
	out    io.Writer
	total  int64
	done   int64
	length int
	block  string
	shade  string
}

// NewBasic creates a basic reporter writing to out.
func NewBasic(out io.Writer) *Basic {
	block, shade := "█", "░"
	if runtime.GOOS == "windows" {
		// Older Windows consoles choke on the block glyphs.
		block, shade = "#", "-"
	}

	return &Basic{out: out, length: basicBarLength, block: block, shade: shade}
}

func (b *Basic) Start(total int64, _ string) {
	b.total = total
	b.done = 0
	b.render()
}

func (b *Basic) Add(n int64) {
	b.done += n
	b.render()
}

func (b *Basic) Finish() {
	fmt.Fprintln(b.out)
}

func (b *Basic) render() {
	if b.total <= 0 {
		return
	}

	completed := int(int64(b.length) * b.done / b.total)
	if completed > b.length {
		completed = b.length
	}

	bar := strings.Repeat(b.block, completed) + strings.Repeat(b.shade, b.length-completed)
	percent := (100*b.done + b.total/2) / b.total

	fmt.Fprintf(b.out, "\r%s %d%%", bar, percent)
}
