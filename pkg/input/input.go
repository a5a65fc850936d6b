package input

import (
	"github.com/golangdaddy/formula/pkg/race"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Bindings maps each intent to the keys that trigger it
var Bindings = map[race.Intents][]ebiten.Key{
	race.Accelerate: {ebiten.KeyArrowUp, ebiten.KeyW},
	race.Reverse:    {ebiten.KeyArrowDown, ebiten.KeyS},
	race.SteerLeft:  {ebiten.KeyArrowLeft, ebiten.KeyA},
	race.SteerRight: {ebiten.KeyArrowRight, ebiten.KeyD},
}

// Compute builds the intent set for this tick from a key-state lookup
func Compute(pressed func(ebiten.Key) bool) race.Intents {
	in := race.NoIntents
	for intent, keys := range Bindings {
		for _, k := range keys {
			if pressed(k) {
				in = in.With(intent)
				break
			}
		}
	}
	return in
}

// Poll reads the live keyboard
func Poll() race.Intents {
	return Compute(ebiten.IsKeyPressed)
}

// ConfirmKeys restart a finished race
var ConfirmKeys = []ebiten.Key{ebiten.KeyEnter, ebiten.KeyNumpadEnter}

// StartKeys leave the title screen. Space only counts here, not in a race.
var StartKeys = append([]ebiten.Key{ebiten.KeySpace}, ConfirmKeys...)

// AnyJustPressed reports whether any of keys went down this tick
func AnyJustPressed(keys []ebiten.Key, justPressed func(ebiten.Key) bool) bool {
	for _, k := range keys {
		if justPressed(k) {
			return true
		}
	}
	return false
}

// ConfirmPressed reports a fresh Enter press or left click
func ConfirmPressed() bool {
	return AnyJustPressed(ConfirmKeys, inpututil.IsKeyJustPressed) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
}

// StartPressed is ConfirmPressed plus Space
func StartPressed() bool {
	return AnyJustPressed(StartKeys, inpututil.IsKeyJustPressed) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
}

// BackPressed reports a fresh Escape press
func BackPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEscape)
}
