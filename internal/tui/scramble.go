package tui

import (
	"math/rand"
	"time"
)

const (
	scrambleGlyphs   = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789!@#$%^&*()_+"
	scrambleInterval = 30 * time.Millisecond
	// framesPerChar reveals one character every third frame.
	framesPerChar = 3
)

// Scramble renders frame n of the title reveal: characters before the
// reveal point are shown, the rest are random glyphs. done is true once the
// whole text is revealed.
func Scramble(text string, frame int, rng *rand.Rand) (out string, done bool) {
	runes := []rune(text)
	if frame >= len(runes)*framesPerChar {
		return text, true
	}

	buf := make([]rune, len(runes))
	for i, r := range runes {
		if i*framesPerChar < frame {
			buf[i] = r
			continue
		}
		buf[i] = rune(scrambleGlyphs[rng.Intn(len(scrambleGlyphs))])
	}
	return string(buf), false
}
