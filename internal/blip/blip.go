// Package blip synthesises the short percussive tone played when a grid
// line touches a point.
package blip

import (
	"bytes"
	"math"

	"geom2"
)

// BytesPerFrame is the size of one 16-bit little-endian stereo frame.
const BytesPerFrame = 4

// Tone describes a blip. Frames are rendered as (left, right) vectors.
type Tone struct {
	Freq    float64     // Hz
	Seconds float64     // length
	Amp     float64     // peak amplitude before panning
	Pan     geom2.Vec2d // per-channel gain
	Glide   geom2.Vec2d // start and end frequency factor
}

// Default is a 60ms 880Hz blip.
var Default = Tone{
	Freq:    880,
	Seconds: 0.06,
	Amp:     0.22,
	Pan:     geom2.New(0.55, 0.45),
	Glide:   geom2.New(1.03, 0.92),
}

// rightPhase is the tiny phase lead of the right channel, in radians.
const rightPhase = 0.015

// decay reaches about -60dB at the end of the tone: exp(-6.9) ~ 0.001.
const decay = 6.9

// PCM renders the tone as 16-bit little-endian stereo PCM.
func (t Tone) PCM(sampleRate int) []byte {
	n := int(float64(sampleRate) * t.Seconds)
	if n <= 0 {
		return nil
	}
	var b bytes.Buffer
	b.Grow(n * BytesPerFrame)

	attackN := int(math.Min(0.005, t.Seconds*0.2) * float64(sampleRate))
	freqs := geom2.MulScalar(t.Glide, t.Freq)

	phase := 0.0
	for i := 0; i < n; i++ {
		// 0..1 through the tone
		x := 0.0
		if n > 1 {
			x = float64(i) / float64(n-1)
		}

		env := t.Amp * attack(i, attackN) * math.Exp(-decay*x)

		f := freqs.X * math.Pow(freqs.Y/freqs.X, x)
		phase += 2 * math.Pi * f / float64(sampleRate)

		second := math.Sin(2*phase) * 0.18
		raw := geom2.New(math.Sin(phase)+second, math.Sin(phase+rightPhase)+second*0.18)
		writeFrame(&b, geom2.MulScalar(raw.Mul(t.Pan), env))
	}
	return b.Bytes()
}

// attack is a cosine fade-in over the first n samples.
func attack(i, n int) float64 {
	if i >= n {
		return 1
	}
	return 0.5 - 0.5*math.Cos(math.Pi*float64(i)/float64(n))
}

func writeFrame(b *bytes.Buffer, frame geom2.Vec2d) {
	s := Quantize(frame)
	b.WriteByte(byte(s.X))
	b.WriteByte(byte(s.X >> 8))
	b.WriteByte(byte(s.Y))
	b.WriteByte(byte(s.Y >> 8))
}

// Quantize clamps a frame to [-1, 1] and converts it to 16-bit samples.
func Quantize(frame geom2.Vec2d) geom2.Sq[int16] {
	return geom2.New(toInt16(frame.X), toInt16(frame.Y))
}

func toInt16(v float64) int16 {
	return int16(max(-1, min(1, v)) * math.MaxInt16)
}
