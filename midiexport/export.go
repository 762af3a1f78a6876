package midiexport

import (
	"fmt"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/Darshil0305/guitar-tabs-api/algorithms/pitch"
	"github.com/Darshil0305/guitar-tabs-api/algorithms/tab"
	"github.com/Darshil0305/guitar-tabs-api/logging"
)

const ticksPerQuarter = 960

// defaultNoteDuration in seconds, used when the next onset is further away
const defaultNoteDuration = 0.5

// WriteSMF writes the detected melody as a single-track standard MIDI
// file. Each note ends at the next onset or after the default duration,
// whichever comes first. Notes whose frequency maps to the unvoiced
// sentinel are skipped.
func WriteSMF(path string, notes []tab.NoteEvent, tempoBPM float64) error {
	if tempoBPM <= 0 {
		tempoBPM = 120.0
	}

	sm := smf.New()
	sm.TimeFormat = smf.MetricTicks(ticksPerQuarter)

	var track smf.Track
	track.Add(0, smf.MetaTempo(tempoBPM))

	secondsToTicks := func(sec float64) uint32 {
		return uint32(sec * tempoBPM / 60.0 * ticksPerQuarter)
	}

	cursor := 0.0
	for i, note := range notes {
		key := pitch.FrequencyToMIDI(note.Frequency)
		if key <= 0 || key > 127 {
			continue
		}

		duration := defaultNoteDuration
		if i+1 < len(notes) {
			if gap := notes[i+1].Time - note.Time; gap > 0 && gap < duration {
				duration = gap
			}
		}

		delta := note.Time - cursor
		if delta < 0 {
			// Duplicate timestamps can overlap the previous note
			delta = 0
		}

		track.Add(secondsToTicks(delta), midi.NoteOn(0, uint8(key), 100))
		track.Add(secondsToTicks(duration), midi.NoteOff(0, uint8(key)))
		cursor = note.Time + duration
	}
	track.Close(0)

	if err := sm.Add(track); err != nil {
		return fmt.Errorf("adding melody track: %w", err)
	}

	if err := sm.WriteFile(path); err != nil {
		return fmt.Errorf("writing MIDI file: %w", err)
	}

	logging.Debug("MIDI export written", logging.Fields{
		"path":  path,
		"notes": len(notes),
	})
	return nil
}
