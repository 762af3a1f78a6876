package tab

import (
	"strings"
	"testing"

	"github.com/Darshil0305/guitar-tabs-api/algorithms/fretboard"
)

var testNotes = []NoteEvent{
	{Time: 0.0, Frequency: 440.0},  // A4, fret 5 on high E
	{Time: 0.5, Frequency: 392.0},  // G4, fret 3 on high E
	{Time: 1.0, Frequency: 329.63}, // E4, open high E
}

func TestRender(t *testing.T) {
	r := NewRenderer(fretboard.StandardTuning())

	t.Run("ContainsAllStrings", func(t *testing.T) {
		out := r.Render(testNotes, 0, false)
		for _, label := range []string{"E|", "B|", "G|", "D|", "A|"} {
			if !strings.Contains(out, label) {
				t.Errorf("output missing string label %q:\n%s", label, out)
			}
		}
		if !strings.Contains(out, "Strumming pattern") {
			t.Errorf("output missing strumming annotation:\n%s", out)
		}
	})

	t.Run("FingerstyleAnnotation", func(t *testing.T) {
		out := r.Render(testNotes, 0, true)
		if !strings.Contains(out, "Fingerstyle pattern") {
			t.Errorf("output missing fingerstyle annotation:\n%s", out)
		}
		if strings.Contains(out, "x") {
			t.Errorf("fingerstyle output should not mark strummed strings:\n%s", out)
		}
	})

	t.Run("StrumMarksSameSideStrings", func(t *testing.T) {
		out := r.Render(testNotes, 0, false)
		lines := strings.Split(out, "\n")
		// Notes all land on string 0; strings 1-2 share its side
		for _, i := range []int{1, 2} {
			if !strings.Contains(lines[i], "x") {
				t.Errorf("line %d should carry strum marks: %q", i, lines[i])
			}
		}
		for _, i := range []int{3, 4, 5} {
			if strings.Contains(lines[i], "x") {
				t.Errorf("line %d is on the other side, no strum marks expected: %q", i, lines[i])
			}
		}
	})

	t.Run("EqualLineLengths", func(t *testing.T) {
		out := r.Render(testNotes, 0, false)
		lines := strings.Split(out, "\n")
		for i := 1; i < 6; i++ {
			if len(lines[i]) != len(lines[0]) {
				t.Errorf("line %d length %d != line 0 length %d",
					i, len(lines[i]), len(lines[0]))
			}
		}
	})

	t.Run("FretDigitsOnOwningString", func(t *testing.T) {
		out := r.Render(testNotes, 0, false)
		highE := strings.Split(out, "\n")[0]
		for _, fret := range []string{"5", "3", "0"} {
			if !strings.Contains(highE, fret) {
				t.Errorf("high E line missing fret %s: %q", fret, highE)
			}
		}
	})

	t.Run("CapoShiftsResolution", func(t *testing.T) {
		out := r.Render([]NoteEvent{{Time: 0, Frequency: 440.0}}, 2, false)
		if !strings.Contains(out, "Capo on fret 2") {
			t.Errorf("output missing capo annotation:\n%s", out)
		}
		// A4 with capo 2 is effective MIDI 67: fret 3 on high E
		highE := strings.Split(out, "\n")[0]
		if !strings.Contains(highE, "3") {
			t.Errorf("high E line should show fret 3 under capo 2: %q", highE)
		}
	})

	t.Run("EmptyNotes", func(t *testing.T) {
		out := r.Render(nil, 0, false)
		lines := strings.Split(out, "\n")
		if lines[0] != "E||" {
			t.Errorf("degenerate high E line = %q, want \"E||\"", lines[0])
		}
		if !strings.Contains(out, "Strumming pattern") {
			t.Errorf("degenerate output still carries the style annotation:\n%s", out)
		}
	})

	t.Run("UnplayableNoteIsRest", func(t *testing.T) {
		// MIDI 35 territory: below low E
		out := r.Render([]NoteEvent{{Time: 0, Frequency: 55.0}}, 0, false)
		lines := strings.Split(out, "\n")
		if lines[0] != "E|--|" {
			t.Errorf("rest line = %q, want \"E|--|\"", lines[0])
		}
	})

	t.Run("ProportionalSpacing", func(t *testing.T) {
		// 1s gap inserts floor(10)-1 = 9 filler dashes before the second slot
		out := r.Render([]NoteEvent{
			{Time: 0.0, Frequency: 329.63},
			{Time: 1.0, Frequency: 329.63},
		}, 0, false)
		highE := strings.Split(out, "\n")[0]
		want := "E|0-" + strings.Repeat("-", 9) + "0-|"
		if highE != want {
			t.Errorf("high E line = %q, want %q", highE, want)
		}
	})
}

func TestDiagramInvariant(t *testing.T) {
	d := NewDiagram(fretboard.StandardTuning())
	check := func(step string) {
		want := d.LineLength()
		for i, line := range d.Lines() {
			if len(line) != want {
				t.Fatalf("%s: line %d length %d, want %d", step, i, len(line), want)
			}
		}
	}

	check("seeded")
	d.AppendFiller(4)
	check("filler")
	d.AppendColumn([6]string{"12", "x", "", "", "", ""}, 2)
	check("column")
	d.AppendAll("|")
	check("terminated")
}
