// Package audio defines the sound side-channel as an injected
// dependency. The core never reaches into a global player; screens
// receive a Player and call it on events. A terminal build ships the
// no-op player.
package audio

// Effect is a short one-shot sound.
type Effect string

const (
	EffectClick   Effect = "click"
	EffectSuccess Effect = "success"
	EffectError   Effect = "error"
	EffectWin     Effect = "win"
	EffectBuy     Effect = "buy"
	EffectUnlock  Effect = "unlock"
)

// Track is a looping background theme. World IDs double as track keys.
type Track string

const (
	TrackMap  Track = "map"
	TrackShop Track = "shop"
)

// Player is the audio side-channel.
type Player interface {
	PlayEffect(e Effect)
	PlayTrack(t Track)
	SetMuted(muted bool)
}

// NopPlayer silently discards all audio calls.
type NopPlayer struct{}

func (NopPlayer) PlayEffect(Effect) {}
func (NopPlayer) PlayTrack(Track)   {}
func (NopPlayer) SetMuted(bool)     {}
