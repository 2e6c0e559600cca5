package constants

import "strings"

// Color is a line colour, identified by its hex code.
type Color string

const (
	ColorYellow Color = "#ffff33"
	ColorOrange Color = "#ff9933"
	ColorGreen  Color = "#339933"
	ColorRed    Color = "#ff0000"
	ColorBlue   Color = "#0099cc"
	ColorPurple Color = "#c463c5"
	ColorBeige  Color = "#d5cfa3"
	ColorWhite  Color = "#ffffff"
)

var colors = table[Color]{
	kind: "color",
	entries: []entry[Color]{
		{ColorYellow, "#ffff33", "YELLOW"},
		{ColorOrange, "#ff9933", "ORANGE"},
		{ColorGreen, "#339933", "GREEN"},
		{ColorRed, "#ff0000", "RED"},
		{ColorBlue, "#0099cc", "BLUE"},
		{ColorPurple, "#c463c5", "PURPLE"},
		{ColorBeige, "#d5cfa3", "BEIGE"},
		{ColorWhite, "#ffffff", "WHITE"},
	},
}

func ColorFromHex(hex string) (Color, error) {
	return colors.fromCode(strings.ToLower(hex))
}

// ColorFromName matches the upper case colour name. Some routes are reported
// with an empty name, those are purple.
func ColorFromName(name string) (Color, error) {
	if name == "" {
		return ColorPurple, nil
	}

	return colors.fromName(name)
}

// ParseColor accepts a hex code or a colour name.
func ParseColor(s string) (Color, error) {
	if color, err := ColorFromHex(s); err == nil {
		return color, nil
	}

	return ColorFromName(s)
}

func (c Color) Hex() string {
	return colors.code(c)
}

func (c Color) Name() string {
	return colors.name(c)
}

func (c Color) String() string {
	return c.Name()
}

func (c Color) MarshalText() ([]byte, error) {
	return []byte(c), nil
}

func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := ParseColor(string(text))
	if err != nil {
		return err
	}

	*c = parsed
	return nil
}
