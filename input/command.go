package input

// Command is one event delivered to the frame loop: Quit, KeyPress,
// AdvanceBackground or AssetsChanged.
type Command interface {
	isCommand()
}

type Quit struct{}

type KeyPress struct {
	Symbol Symbol
}

// AdvanceBackground is raised by the periodic background timer.
type AdvanceBackground struct{}

// AssetsChanged reports that the asset folders changed on disk. Path is
// the last file touched. Reloading stays an explicit key press.
type AssetsChanged struct {
	Path string
}

func (Quit) isCommand()              {}
func (KeyPress) isCommand()          {}
func (AdvanceBackground) isCommand() {}
func (AssetsChanged) isCommand()     {}
