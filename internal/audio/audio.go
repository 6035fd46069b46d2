package audio

import (
	"encoding/binary"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	sampleRate    = 22050
	impactSeconds = 0.08
	impactPitchHz = 180
)

// Listener represents the audio listener position and orientation
type Listener struct {
	Position rl.Vector3
	Forward  rl.Vector3
	Right    rl.Vector3
}

// NewListener orients a listener at position looking toward target.
func NewListener(position, target, up mgl32.Vec3) Listener {
	forward := target.Sub(position).Normalize()
	right := forward.Cross(up).Normalize()
	return Listener{
		Position: toRaylib(position),
		Forward:  toRaylib(forward),
		Right:    toRaylib(right),
	}
}

func toRaylib(v mgl32.Vec3) rl.Vector3 {
	return rl.Vector3{X: v[0], Y: v[1], Z: v[2]}
}

// Spatialize returns the volume and stereo pan for a sound at pos.
// Volume falls off linearly to zero at maxDistance. Pan is 0 for full left,
// 0.5 for centre and 1 for full right.
func Spatialize(listener Listener, pos rl.Vector3, baseVolume, maxDistance float32) (volume, pan float32) {
	toSource := rl.Vector3Subtract(pos, listener.Position)
	distance := rl.Vector3Length(toSource)

	if distance < maxDistance {
		volume = baseVolume * (1.0 - distance/maxDistance)
	}

	pan = 0.5
	if distance > 0.001 {
		direction := rl.Vector3Scale(toSource, 1.0/distance)
		pan = 0.5 + rl.Vector3DotProduct(direction, listener.Right)*0.5
		pan = rl.Clamp(pan, 0, 1)

		// Sounds behind the listener are slightly quieter
		frontDot := rl.Vector3DotProduct(direction, listener.Forward)
		if frontDot < 0 {
			volume *= 0.7 + 0.3*float32(math.Abs(float64(frontDot)))
		}
	}
	return volume, pan
}

// ImpactSamples synthesizes a short decaying thump as 16-bit mono PCM.
func ImpactSamples() []int16 {
	n := int(sampleRate * impactSeconds)
	samples := make([]int16, n)
	for i := range samples {
		t := float64(i) / sampleRate
		envelope := math.Exp(-t * 60)
		samples[i] = int16(math.Sin(2*math.Pi*impactPitchHz*t) * envelope * math.MaxInt16 * 0.8)
	}
	return samples
}

// Impacts plays a collision sound positioned relative to a listener.
type Impacts struct {
	Listener    Listener
	Volume      float32
	MaxDistance float32

	sound rl.Sound
	ready bool
}

// Init opens the audio device and builds the impact sound. Call after the
// window has been created.
func (a *Impacts) Init() {
	rl.InitAudioDevice()
	if !rl.IsAudioDeviceReady() {
		return
	}

	samples := ImpactSamples()
	data := make([]byte, len(samples)*2)
	for i, s := range samples {
		binary.LittleEndian.PutUint16(data[i*2:], uint16(s))
	}
	wave := rl.NewWave(uint32(len(samples)), sampleRate, 16, 1, data)
	a.sound = rl.LoadSoundFromWave(wave)
	a.ready = true

	if a.Volume == 0 {
		a.Volume = 0.6
	}
	if a.MaxDistance == 0 {
		a.MaxDistance = 60
	}
}

// Play triggers the impact sound at pos.
func (a *Impacts) Play(pos rl.Vector3) {
	if !a.ready {
		return
	}
	volume, pan := Spatialize(a.Listener, pos, a.Volume, a.MaxDistance)
	if volume <= 0 {
		return
	}
	rl.SetSoundVolume(a.sound, volume)
	rl.SetSoundPan(a.sound, pan)
	rl.PlaySound(a.sound)
}

// Close shuts down the audio system
func (a *Impacts) Close() {
	if !a.ready {
		return
	}
	rl.UnloadSound(a.sound)
	rl.CloseAudioDevice()
	a.ready = false
}
