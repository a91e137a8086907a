package main

import (
	"bytes"
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

const sampleRate = 44100

// sounds holds the procedural audio: short beeps for eating and game over,
// plus a four-note background loop that runs while the game does.
type sounds struct {
	eat      *audio.Player
	gameOver *audio.Player
	loop     *audio.Player
}

func newSounds() *sounds {
	ctx := audio.NewContext(sampleRate)
	return &sounds{
		eat:      beepPlayer(ctx, 880, 0.1),
		gameOver: beepPlayer(ctx, 220, 0.4),
		loop:     loopPlayer(ctx),
	}
}

func (s *sounds) playEat() {
	s.eat.Rewind()
	s.eat.Play()
}

func (s *sounds) playGameOver() {
	s.gameOver.Rewind()
	s.gameOver.Play()
}

// syncLoop keeps the background loop playing exactly while the game runs.
func (s *sounds) syncLoop(running bool) {
	switch {
	case running && !s.loop.IsPlaying():
		s.loop.Play()
	case !running && s.loop.IsPlaying():
		s.loop.Pause()
	}
}

// appendTone writes durSec seconds of a decaying sine at freq Hz as 16-bit
// stereo samples.
func appendTone(buf []byte, freq, durSec, decay, amp float64) []byte {
	n := int(sampleRate * durSec)
	for i := 0; i < n; i++ {
		t := float64(i) / sampleRate
		v := int16(math.Sin(2*math.Pi*freq*t) * amp * math.Exp(-decay*t))
		buf = append(buf, byte(v), byte(v>>8), byte(v), byte(v>>8))
	}
	return buf
}

func beepPlayer(ctx *audio.Context, freq, durSec float64) *audio.Player {
	return ctx.NewPlayerFromBytes(appendTone(nil, freq, durSec, 3, 4000))
}

func loopPlayer(ctx *audio.Context) *audio.Player {
	var buf []byte
	for _, freq := range []float64{261.63, 329.63, 392.00, 523.25} {
		buf = appendTone(buf, freq, 0.25, 2, 2000)
	}
	loop := audio.NewInfiniteLoop(bytes.NewReader(buf), int64(len(buf)))
	p, err := ctx.NewPlayer(loop)
	if err != nil {
		log.Fatal(err)
	}
	return p
}
