package audio

import (
	"fmt"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/snake-monster/constants"
	"github.com/lixenwraith/snake-monster/core"
)

const (
	eatFreqFromHz  = 660.0
	eatFreqToHz    = 990.0
	eatAmplitude   = 0.25
	buzzFrequency  = 120.0
	buzzAmplitude  = 0.2
	loseFreqFromHz = 440.0
	loseFreqToHz   = 110.0
	loseAmplitude  = 0.3
	winNoteGain    = -0.75
)

// winArpeggio is a C major triad, one note per WinNoteDuration
var winArpeggio = []float64{523.25, 659.25, 783.99}

// Cue builds the finite streamer for one sound
func Cue(sr beep.SampleRate, st core.SoundType) (beep.Streamer, error) {
	switch st {
	case core.SoundEat:
		return beep.Take(sr.N(constants.EatSoundDuration),
			NewSlideGenerator(sr, eatFreqFromHz, eatFreqToHz, constants.EatSoundDuration, eatAmplitude)), nil
	case core.SoundContact:
		return beep.Take(sr.N(constants.ContactSoundDuration), NewBuzzGenerator(sr, buzzFrequency)), nil
	case core.SoundLose:
		return beep.Take(sr.N(constants.LoseSoundDuration),
			NewSlideGenerator(sr, loseFreqFromHz, loseFreqToHz, constants.LoseSoundDuration, loseAmplitude)), nil
	case core.SoundWin:
		notes := make([]beep.Streamer, 0, len(winArpeggio))
		for _, freq := range winArpeggio {
			tone, err := generators.SineTone(sr, freq)
			if err != nil {
				return nil, err
			}
			notes = append(notes, beep.Take(sr.N(constants.WinNoteDuration), tone))
		}
		return &effects.Gain{Streamer: beep.Seq(notes...), Gain: winNoteGain}, nil
	}
	return nil, fmt.Errorf("audio: unknown sound type %d", st)
}

// SlideGenerator sweeps a sine linearly between two frequencies with a fading envelope
type SlideGenerator struct {
	sr        beep.SampleRate
	from, to  float64
	amplitude float64
	span      int
	pos       int
	phase     float64
}

// NewSlideGenerator creates a sweep that reaches to after d
func NewSlideGenerator(sr beep.SampleRate, from, to float64, d time.Duration, amplitude float64) *SlideGenerator {
	return &SlideGenerator{
		sr:        sr,
		from:      from,
		to:        to,
		amplitude: amplitude,
		span:      max(sr.N(d), 1),
	}
}

func (g *SlideGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		progress := math.Min(float64(g.pos)/float64(g.span), 1.0)
		freq := g.from + (g.to-g.from)*progress

		g.phase += 2 * math.Pi * freq / float64(g.sr)
		if g.phase > 2*math.Pi {
			g.phase -= 2 * math.Pi
		}

		sample := g.amplitude * (1.0 - progress) * math.Sin(g.phase)
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *SlideGenerator) Err() error {
	return nil
}

// BuzzGenerator generates a low-pitch buzz sound
type BuzzGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

// NewBuzzGenerator creates a buzz sound generator
func NewBuzzGenerator(sr beep.SampleRate, freq float64) *BuzzGenerator {
	return &BuzzGenerator{
		sr:   sr,
		freq: freq,
	}
}

func (g *BuzzGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// Fundamental plus two harmonics
		sample := 0.3 * math.Sin(2*math.Pi*g.freq*t)
		sample += 0.15 * math.Sin(2*math.Pi*g.freq*2*t)
		sample += 0.075 * math.Sin(2*math.Pi*g.freq*3*t)

		// 20ms fade in
		envelope := math.Min(t/0.02, 1.0)
		sample *= envelope * buzzAmplitude

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *BuzzGenerator) Err() error {
	return nil
}
