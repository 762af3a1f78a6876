package tab

import (
	"strings"

	"github.com/Darshil0305/guitar-tabs-api/algorithms/fretboard"
)

// Diagram is the six-line character grid a tab is rendered into. All
// appends go through AppendAll or AppendColumn so the lines can never
// drift apart in length.
type Diagram struct {
	lines [fretboard.NumStrings]strings.Builder
}

// NewDiagram creates a diagram seeded with the string labels ("E|", "B|", ...)
func NewDiagram(tuning *fretboard.Tuning) *Diagram {
	d := &Diagram{}
	for i := range d.lines {
		d.lines[i].WriteString(tuning.StringName(i))
		d.lines[i].WriteString("|")
	}
	return d
}

// AppendAll appends the same text to every line
func (d *Diagram) AppendAll(text string) {
	for i := range d.lines {
		d.lines[i].WriteString(text)
	}
}

// AppendFiller appends n filler dashes to every line
func (d *Diagram) AppendFiller(n int) {
	if n <= 0 {
		return
	}
	d.AppendAll(strings.Repeat("-", n))
}

// AppendColumn appends one slot of the given width to every line. Each
// cell is right-padded with dashes; a cell already at or past the width
// is appended as-is (two-digit frets fill the slot exactly).
func (d *Diagram) AppendColumn(cells [fretboard.NumStrings]string, width int) {
	for i := range d.lines {
		cell := cells[i]
		d.lines[i].WriteString(cell)
		if pad := width - len(cell); pad > 0 {
			d.lines[i].WriteString(strings.Repeat("-", pad))
		}
	}
}

// LineLength returns the current length of the diagram's lines. All six
// are always equal by construction.
func (d *Diagram) LineLength() int {
	return d.lines[0].Len()
}

// Lines returns the six rendered lines, highest string first
func (d *Diagram) Lines() []string {
	out := make([]string, len(d.lines))
	for i := range d.lines {
		out[i] = d.lines[i].String()
	}
	return out
}

// String joins the six lines with newlines
func (d *Diagram) String() string {
	return strings.Join(d.Lines(), "\n")
}
