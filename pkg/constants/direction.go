package constants

type Direction string

const (
	DirectionNorthbound Direction = "n"
	DirectionSouthbound Direction = "s"
)

var directions = table[Direction]{
	kind: "direction",
	entries: []entry[Direction]{
		{DirectionNorthbound, "n", "North"},
		{DirectionSouthbound, "s", "South"},
	},
}

func DirectionFromCode(code string) (Direction, error) {
	return directions.fromCode(code)
}

func DirectionFromName(name string) (Direction, error) {
	return directions.fromName(name)
}

// ParseDirection accepts "n", "s", "North" or "South".
func ParseDirection(s string) (Direction, error) {
	return directions.parse(s)
}

func (d Direction) Code() string {
	return directions.code(d)
}

func (d Direction) Name() string {
	return directions.name(d)
}

func (d Direction) String() string {
	return d.Name()
}

func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d), nil
}

func (d *Direction) UnmarshalText(text []byte) error {
	parsed, err := ParseDirection(string(text))
	if err != nil {
		return err
	}

	*d = parsed
	return nil
}
