package audio

import (
	"encoding/binary"
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestRenderHeader(t *testing.T) {
	wav := Render(0.1, 0.5, func(t float64) float64 { return 0 })

	samples := int(SampleRate * 0.1)
	if want := 44 + samples*2; len(wav) != want {
		t.Fatalf("len = %d, want %d", len(wav), want)
	}
	if string(wav[0:4]) != "RIFF" || string(wav[8:12]) != "WAVE" {
		t.Error("missing RIFF/WAVE magic")
	}
	if got := binary.LittleEndian.Uint32(wav[4:8]); got != uint32(36+samples*2) {
		t.Errorf("chunk size = %d, want %d", got, 36+samples*2)
	}
	if got := binary.LittleEndian.Uint16(wav[20:22]); got != 1 {
		t.Errorf("format = %d, want 1 (PCM)", got)
	}
	if got := binary.LittleEndian.Uint16(wav[22:24]); got != 1 {
		t.Errorf("channels = %d, want 1", got)
	}
	if got := binary.LittleEndian.Uint32(wav[24:28]); got != SampleRate {
		t.Errorf("sample rate = %d, want %d", got, SampleRate)
	}
	if got := binary.LittleEndian.Uint16(wav[34:36]); got != 16 {
		t.Errorf("bits per sample = %d, want 16", got)
	}
	if got := binary.LittleEndian.Uint32(wav[40:44]); got != uint32(samples*2) {
		t.Errorf("data size = %d, want %d", got, samples*2)
	}
}

func TestRenderClipsAndScales(t *testing.T) {
	wav := Render(0.001, 1.0, func(t float64) float64 { return 5 })

	for i := 44; i < len(wav); i += 2 {
		s := int16(binary.LittleEndian.Uint16(wav[i : i+2]))
		if s != math.MaxInt16 {
			t.Fatalf("sample at %d = %d, want clipped to %d", i, s, math.MaxInt16)
		}
	}
}

func TestCuesAreNonSilent(t *testing.T) {
	for name, gen := range Assets {
		wav := gen()
		var peak int16
		for i := 44; i < len(wav); i += 2 {
			s := int16(binary.LittleEndian.Uint16(wav[i : i+2]))
			if s > peak {
				peak = s
			}
		}
		if peak == 0 {
			t.Errorf("%s rendered silent", name)
		}
	}
}

func TestWriteAssets(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "sounds")

	if err := WriteAssets(dir); err != nil {
		t.Fatalf("WriteAssets: %v", err)
	}

	for name := range Assets {
		info, err := os.Stat(filepath.Join(dir, name))
		if err != nil {
			t.Fatalf("stat %s: %v", name, err)
		}
		if info.Size() <= 44 {
			t.Errorf("%s is header-only (%d bytes)", name, info.Size())
		}
	}
}
