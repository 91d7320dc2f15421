// Package audio synthesizes the game's sound cues as 16-bit mono PCM WAV
// files. Nothing here plays audio; the files are written to disk for
// whatever player the user points at them.
package audio

import (
	"encoding/binary"
	"fmt"
	"math"
	"os"
	"path/filepath"
)

// SampleRate for every generated cue.
const SampleRate = 44100

// Generator produces one sample for the elapsed time t in seconds, in the
// range [-1, 1]. Values outside the range are clipped during rendering.
type Generator func(t float64) float64

// Render synthesizes a WAV file: a 44-byte RIFF header followed by 16-bit
// little-endian mono samples scaled by volume.
func Render(duration, volume float64, gen Generator) []byte {
	n := int(SampleRate * duration)
	buf := make([]byte, 44+n*2)

	copy(buf[0:4], "RIFF")
	binary.LittleEndian.PutUint32(buf[4:8], uint32(36+n*2))
	copy(buf[8:12], "WAVE")
	copy(buf[12:16], "fmt ")
	binary.LittleEndian.PutUint32(buf[16:20], 16)
	binary.LittleEndian.PutUint16(buf[20:22], 1) // PCM
	binary.LittleEndian.PutUint16(buf[22:24], 1) // mono
	binary.LittleEndian.PutUint32(buf[24:28], SampleRate)
	binary.LittleEndian.PutUint32(buf[28:32], SampleRate*2)
	binary.LittleEndian.PutUint16(buf[32:34], 2)
	binary.LittleEndian.PutUint16(buf[34:36], 16)
	copy(buf[36:40], "data")
	binary.LittleEndian.PutUint32(buf[40:44], uint32(n*2))

	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		s := gen(t)
		if s > 1 {
			s = 1
		}
		if s < -1 {
			s = -1
		}
		sample := int16(math.Floor(s * 0x7FFF * volume))
		binary.LittleEndian.PutUint16(buf[44+i*2:], uint16(sample))
	}
	return buf
}

// Click is a short high-frequency tick for selections.
func Click() []byte {
	return Render(0.05, 0.3, func(t float64) float64 {
		const f = 1200
		return math.Sin(2*math.Pi*f*t) * math.Exp(-50*t)
	})
}

// Correct is a soft C5 ding with an exponential decay.
func Correct() []byte {
	return Render(0.5, 0.5, func(t float64) float64 {
		const f = 523.25 // C5
		return math.Sin(2*math.Pi*f*t) * math.Exp(-8*t)
	})
}

// Incorrect is a low two-partial thud with a fast decay.
func Incorrect() []byte {
	return Render(0.4, 0.6, func(t float64) float64 {
		const f = 60
		decay := math.Exp(-15 * t)
		return (math.Sin(2*math.Pi*f*t) + 0.5*math.Sin(2*math.Pi*f*1.5*t)) * decay
	})
}

// Fanfare is a brassy C-E-G-C arpeggio, three short notes then a held top
// note, built from a fundamental plus two harmonics under a per-note
// envelope.
func Fanfare() []byte {
	return Render(3.0, 0.5, func(t float64) float64 {
		var f, local float64
		switch {
		case t < 0.15:
			f, local = 261.63, t // C4
		case t < 0.3:
			f, local = 329.63, t-0.15 // E4
		case t < 0.45:
			f, local = 392.00, t-0.3 // G4
		case t < 3.0:
			f, local = 523.25, t-0.45 // C5, held
		default:
			return 0
		}

		w := 2 * math.Pi * f * local
		v := math.Sin(w) + 0.5*math.Sin(2*w) + 0.25*math.Sin(3*w)

		var env float64
		switch {
		case local < 0.05:
			env = local / 0.05
		case local < 0.1:
			env = 1 - (local-0.05)*2
		default:
			release := 10.0
			if t > 0.6 {
				release = 2.0
			}
			env = 0.8 * math.Exp(-(local-0.1)*release)
		}
		return v * env
	})
}

// Assets maps cue file names to their synthesizers.
var Assets = map[string]func() []byte{
	"click.wav":     Click,
	"correct.wav":   Correct,
	"incorrect.wav": Incorrect,
	"fanfare.wav":   Fanfare,
}

// WriteAssets renders every cue into dir, creating it if needed.
func WriteAssets(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create sound dir: %w", err)
	}
	for name, gen := range Assets {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, gen(), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", name, err)
		}
	}
	return nil
}
