package libdiff

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

type writeOpts struct {
	context int
	color   bool
	from    string
	to      string
}

type WriteOption func(*writeOpts)

// WriteContext sets the number of unchanged lines shown around each change.
// The default is 3.
func WriteContext(n int) WriteOption {
	return func(o *writeOpts) { o.context = n }
}

func WriteColor(v bool) WriteOption {
	return func(o *writeOpts) { o.color = v }
}

// WriteNames sets the file names written in the header.
func WriteNames(from, to string) WriteOption {
	return func(o *writeOpts) { o.from, o.to = from, to }
}

// Write renders lines as hunks of changes with surrounding context.
// Nothing is written when there are no changes.
func Write(w io.Writer, lines []Line, opts ...WriteOption) error {
	o := &writeOpts{context: 3, from: "a", to: "b"}
	for _, f := range opts {
		f(o)
	}
	if !Changed(lines) {
		return nil
	}
	ins := color.New(color.FgGreen)
	del := color.New(color.FgRed)
	hdr := color.New(color.FgCyan)
	for _, c := range []*color.Color{ins, del, hdr} {
		if o.color {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	if _, err := fmt.Fprintf(w, "--- %s\n+++ %s\n", o.from, o.to); err != nil {
		return err
	}
	for _, h := range hunks(lines, o.context) {
		if _, err := hdr.Fprintf(w, "@@ -%d,%d +%d,%d @@\n", h.fromLine, h.fromLen, h.toLine, h.toLen); err != nil {
			return err
		}
		for _, l := range lines[h.start:h.end] {
			var err error
			switch l.Op {
			case Insert:
				_, err = ins.Fprintln(w, "+"+l.Text)
			case Delete:
				_, err = del.Fprintln(w, "-"+l.Text)
			default:
				_, err = fmt.Fprintln(w, " "+l.Text)
			}
			if err != nil {
				return err
			}
		}
	}
	return nil
}

type hunk struct {
	start, end        int
	fromLine, fromLen int
	toLine, toLen     int
}

// hunks groups changed lines with up to n lines of context on either side.
// Hunks whose context would overlap are merged.
func hunks(lines []Line, n int) []hunk {
	var res []hunk
	var cur *hunk
	lastChange := -1
	for i := range lines {
		if lines[i].Op == Equal {
			continue
		}
		if cur != nil && i-lastChange-1 <= 2*n {
			lastChange = i
			continue
		}
		if cur != nil {
			cur.end = min(lastChange+n+1, len(lines))
			res = append(res, *cur)
		}
		cur = &hunk{start: max(i-n, 0)}
		lastChange = i
	}
	if cur != nil {
		cur.end = min(lastChange+n+1, len(lines))
		res = append(res, *cur)
	}
	fl, tl, pos := 1, 1, 0
	for i := range res {
		h := &res[i]
		for ; pos < h.start; pos++ {
			fl, tl = advance(lines[pos].Op, fl, tl)
		}
		h.fromLine, h.toLine = fl, tl
		for ; pos < h.end; pos++ {
			switch lines[pos].Op {
			case Equal:
				h.fromLen++
				h.toLen++
			case Insert:
				h.toLen++
			case Delete:
				h.fromLen++
			}
			fl, tl = advance(lines[pos].Op, fl, tl)
		}
	}
	return res
}

func advance(op Op, fl, tl int) (int, int) {
	switch op {
	case Equal:
		return fl + 1, tl + 1
	case Insert:
		return fl, tl + 1
	default:
		return fl + 1, tl
	}
}
