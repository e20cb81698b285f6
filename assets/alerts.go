package assets

import "github.com/gen2brain/beeep"

// Alerts raises a desktop alert when a load turns fatal. Further fatal
// loads stay quiet until a usable load resets it.
type Alerts struct {
	title string
	send  func(title, message string) error
	fatal bool
}

func NewAlerts(title string) *Alerts {
	return &Alerts{
		title: title,
		send: func(title, message string) error {
			return beeep.Alert(title, message, "")
		},
	}
}

// Observe looks at one load result and reports whether an alert went out.
func (a *Alerts) Observe(r Report, message string) (bool, error) {
	if !r.Fatal {
		a.fatal = false
		return false, nil
	}
	if a.fatal {
		return false, nil
	}
	a.fatal = true
	return true, a.send(a.title, message)
}
