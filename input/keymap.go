package input

import "github.com/hajimehoshi/ebiten/v2"

type ActionKind int

const (
	ActionNone ActionKind = iota
	ActionEffect
	ActionTrack
	ActionStopAll
	ActionMusicUp
	ActionMusicDown
	ActionEffectUp
	ActionEffectDown
	ActionToggleOverlay
	ActionReload
	ActionQuit
)

// Action is what a key press means. Index is the effect slot or track
// number for ActionEffect and ActionTrack.
type Action struct {
	Kind  ActionKind
	Index int
}

// TrackKeys is how many tracks the number row can reach.
const TrackKeys = 10

// Resolve maps a symbol to its action. Number keys 1-9 select tracks 0-8
// and 0 selects track 9, on the top row and the numpad alike.
func Resolve(s Symbol) Action {
	if i, ok := s.Letter(); ok {
		return Action{Kind: ActionEffect, Index: i}
	}
	if d, ok := s.Digit(); ok {
		return Action{Kind: ActionTrack, Index: trackForDigit(d)}
	}
	if d, ok := s.Numpad(); ok {
		return Action{Kind: ActionTrack, Index: trackForDigit(d)}
	}

	switch s {
	case SymbolSpace:
		return Action{Kind: ActionStopAll}
	case SymbolArrowUp:
		return Action{Kind: ActionMusicUp}
	case SymbolArrowDown:
		return Action{Kind: ActionMusicDown}
	case SymbolArrowRight:
		return Action{Kind: ActionEffectUp}
	case SymbolArrowLeft:
		return Action{Kind: ActionEffectDown}
	case SymbolShift:
		return Action{Kind: ActionToggleOverlay}
	case SymbolReload:
		return Action{Kind: ActionReload}
	case SymbolEscape:
		return Action{Kind: ActionQuit}
	}
	return Action{}
}

// DigitForTrack is the inverse of the number-key mapping, for labels.
func DigitForTrack(track int) (int, bool) {
	if track < 0 || track >= TrackKeys {
		return 0, false
	}
	return (track + 1) % 10, true
}

func trackForDigit(d int) int {
	if d == 0 {
		return 9
	}
	return d - 1
}

var keySymbols = buildKeySymbols()

func buildKeySymbols() map[ebiten.Key]Symbol {
	letters := []ebiten.Key{
		ebiten.KeyA, ebiten.KeyB, ebiten.KeyC, ebiten.KeyD, ebiten.KeyE, ebiten.KeyF, ebiten.KeyG,
		ebiten.KeyH, ebiten.KeyI, ebiten.KeyJ, ebiten.KeyK, ebiten.KeyL, ebiten.KeyM, ebiten.KeyN,
		ebiten.KeyO, ebiten.KeyP, ebiten.KeyQ, ebiten.KeyR, ebiten.KeyS, ebiten.KeyT, ebiten.KeyU,
		ebiten.KeyV, ebiten.KeyW, ebiten.KeyX, ebiten.KeyY, ebiten.KeyZ,
	}
	digits := []ebiten.Key{
		ebiten.KeyDigit0, ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3, ebiten.KeyDigit4,
		ebiten.KeyDigit5, ebiten.KeyDigit6, ebiten.KeyDigit7, ebiten.KeyDigit8, ebiten.KeyDigit9,
	}
	numpad := []ebiten.Key{
		ebiten.KeyNumpad0, ebiten.KeyNumpad1, ebiten.KeyNumpad2, ebiten.KeyNumpad3, ebiten.KeyNumpad4,
		ebiten.KeyNumpad5, ebiten.KeyNumpad6, ebiten.KeyNumpad7, ebiten.KeyNumpad8, ebiten.KeyNumpad9,
	}

	m := map[ebiten.Key]Symbol{
		ebiten.KeyArrowUp:    SymbolArrowUp,
		ebiten.KeyArrowDown:  SymbolArrowDown,
		ebiten.KeyArrowLeft:  SymbolArrowLeft,
		ebiten.KeyArrowRight: SymbolArrowRight,
		ebiten.KeyShiftLeft:  SymbolShift,
		ebiten.KeyShiftRight: SymbolShift,
		ebiten.KeySpace:      SymbolSpace,
		ebiten.KeyEscape:     SymbolEscape,
		ebiten.KeyF5:         SymbolReload,
	}
	for i, k := range letters {
		m[k] = Letter(i)
	}
	for i, k := range digits {
		m[k] = Digit(i)
	}
	for i, k := range numpad {
		m[k] = Numpad(i)
	}
	return m
}

// SymbolForKey returns SymbolNone for keys the soundboard ignores.
func SymbolForKey(k ebiten.Key) Symbol {
	return keySymbols[k]
}
