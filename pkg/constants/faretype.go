package constants

type FareType string

const (
	FareTypeClipper    FareType = "clipper"
	FareTypeCash       FareType = "cash"
	FareTypeRTCClipper FareType = "rtcclipper"
	FareTypeStudent    FareType = "student"
)

var fareTypes = table[FareType]{
	kind: "fare type",
	entries: []entry[FareType]{
		{FareTypeClipper, "clipper", "Clipper"},
		{FareTypeCash, "cash", "BART Blue Ticket"},
		{FareTypeRTCClipper, "rtcclipper", "Senior/Disabled Clipper"},
		{FareTypeStudent, "student", "Youth Clipper"},
	},
}

func FareTypeFromCode(code string) (FareType, error) {
	return fareTypes.fromCode(code)
}

func FareTypeFromName(name string) (FareType, error) {
	return fareTypes.fromName(name)
}

// ParseFareType accepts a fare class code or its display name.
func ParseFareType(s string) (FareType, error) {
	return fareTypes.parse(s)
}

func (f FareType) Code() string {
	return fareTypes.code(f)
}

func (f FareType) Name() string {
	return fareTypes.name(f)
}

func (f FareType) String() string {
	return f.Name()
}

func (f FareType) MarshalText() ([]byte, error) {
	return []byte(f), nil
}

func (f *FareType) UnmarshalText(text []byte) error {
	parsed, err := ParseFareType(string(text))
	if err != nil {
		return err
	}

	*f = parsed
	return nil
}
