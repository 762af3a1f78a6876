package tab

import (
	"strconv"

	"github.com/Darshil0305/guitar-tabs-api/algorithms/fretboard"
	"github.com/Darshil0305/guitar-tabs-api/algorithms/pitch"
)

// NoteEvent is one detected note: a timestamp in seconds and a fundamental
// frequency in Hz. Events arrive ordered ascending by time; duplicates at
// the same time are kept.
type NoteEvent struct {
	Time      float64 `json:"time"`
	Frequency float64 `json:"frequency"`
}

// Renderer turns a note sequence into an ASCII tab diagram
type Renderer struct {
	tuning *fretboard.Tuning

	// Spacing is the slot width in characters reserved per note
	Spacing int
}

// NewRenderer creates a renderer for the given tuning with default spacing
func NewRenderer(tuning *fretboard.Tuning) *Renderer {
	return &Renderer{
		tuning:  tuning,
		Spacing: 2,
	}
}

// Render produces the complete tab text: six string lines, an optional
// capo annotation, and a playing-style annotation. capoFret > 0 shifts
// every note down before resolution (the capo shortens the scale).
// An empty note sequence yields a degenerate but well-formed diagram.
func (r *Renderer) Render(notes []NoteEvent, capoFret int, fingerstyle bool) string {
	d := NewDiagram(r.tuning)

	lastTime := -1.0
	for _, note := range notes {
		// Proportional filler between notes, one dash per 100ms beyond
		// the slot itself
		if lastTime >= 0 {
			gap := note.Time - lastTime
			d.AppendFiller(int(gap*10) - 1)
		}

		midi := pitch.FrequencyToMIDI(note.Frequency)
		if capoFret > 0 {
			midi -= capoFret
		}

		if pos, ok := r.tuning.Resolve(midi); ok {
			d.AppendColumn(r.noteColumn(pos, fingerstyle), r.Spacing)
		} else {
			// Unplayable note renders as a rest
			d.AppendFiller(r.Spacing)
		}

		lastTime = note.Time
	}

	d.AppendAll("|")

	out := d.String()
	if capoFret > 0 {
		out += "\nCapo on fret " + strconv.Itoa(capoFret)
	}
	if fingerstyle {
		out += "\nFingerstyle pattern"
	} else {
		out += "\nStrumming pattern"
	}
	return out
}

// noteColumn builds the six cells for one sounding note. The sounding
// string gets its fret number; in strum mode the strings on the same half
// of the neck get an "x" (the strum sweeps neighbors), the rest stay
// silent. In fingerstyle mode only the plucked string sounds.
func (r *Renderer) noteColumn(pos fretboard.Position, fingerstyle bool) [fretboard.NumStrings]string {
	var cells [fretboard.NumStrings]string
	for i := range cells {
		switch {
		case i == pos.StringIndex:
			cells[i] = strconv.Itoa(pos.Fret)
		case !fingerstyle && sameSide(i, pos.StringIndex):
			cells[i] = "x"
		default:
			cells[i] = ""
		}
	}
	return cells
}

// sameSide partitions the strings into the treble half (0-2) and the bass
// half (3-5)
func sameSide(a, b int) bool {
	return (a < 3) == (b < 3)
}
