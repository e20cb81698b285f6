package input

import (
	"fmt"
	"strconv"
)

// Symbol identifies one discrete key the soundboard reacts to.
type Symbol int

const (
	SymbolNone Symbol = iota
	SymbolArrowUp
	SymbolArrowDown
	SymbolArrowLeft
	SymbolArrowRight
	SymbolShift
	SymbolSpace
	SymbolEscape
	SymbolReload
)

const (
	letterBase Symbol = 100
	digitBase  Symbol = 200
	numpadBase Symbol = 300

	LetterCount = 26
)

// Letter returns the symbol for the i-th letter, A being 0.
func Letter(i int) Symbol {
	if i < 0 || i >= LetterCount {
		return SymbolNone
	}
	return letterBase + Symbol(i)
}

func Digit(d int) Symbol {
	if d < 0 || d > 9 {
		return SymbolNone
	}
	return digitBase + Symbol(d)
}

func Numpad(d int) Symbol {
	if d < 0 || d > 9 {
		return SymbolNone
	}
	return numpadBase + Symbol(d)
}

func (s Symbol) Letter() (int, bool) {
	return s.offset(letterBase, LetterCount)
}

func (s Symbol) Digit() (int, bool) {
	return s.offset(digitBase, 10)
}

func (s Symbol) Numpad() (int, bool) {
	return s.offset(numpadBase, 10)
}

func (s Symbol) offset(base Symbol, n int) (int, bool) {
	if s < base || s >= base+Symbol(n) {
		return 0, false
	}
	return int(s - base), true
}

func (s Symbol) String() string {
	if i, ok := s.Letter(); ok {
		return string(rune('A' + i))
	}
	if d, ok := s.Digit(); ok {
		return strconv.Itoa(d)
	}
	if d, ok := s.Numpad(); ok {
		return "KP" + strconv.Itoa(d)
	}
	switch s {
	case SymbolNone:
		return "none"
	case SymbolArrowUp:
		return "Up"
	case SymbolArrowDown:
		return "Down"
	case SymbolArrowLeft:
		return "Left"
	case SymbolArrowRight:
		return "Right"
	case SymbolShift:
		return "Shift"
	case SymbolSpace:
		return "Space"
	case SymbolEscape:
		return "Esc"
	case SymbolReload:
		return "F5"
	}
	return fmt.Sprintf("Symbol(%d)", int(s))
}
