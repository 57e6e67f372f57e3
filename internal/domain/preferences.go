package domain

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Toggle flips between light and dark.
func (t Theme) Toggle() Theme {
	if t == ThemeLight {
		return ThemeDark
	}
	return ThemeLight
}

// Preferences are the visitor's display choices, persisted between runs.
type Preferences struct {
	Theme      Theme  `mapstructure:"theme" json:"theme"`
	Background string `mapstructure:"background" json:"background"`
}

const DefaultBackground = "simple"

// Backgrounds are the selectable decorative backgrounds, in menu order.
var Backgrounds = []string{"simple", "animated", "three", "none"}

// NextBackground returns the background after id, wrapping around. Unknown
// ids restart the cycle.
func NextBackground(id string) string {
	for i, bg := range Backgrounds {
		if bg == id {
			return Backgrounds[(i+1)%len(Backgrounds)]
		}
	}
	return Backgrounds[0]
}

// DefaultPreferences is used when nothing has been stored yet.
func DefaultPreferences() Preferences {
	return Preferences{Theme: ThemeDark, Background: DefaultBackground}
}
