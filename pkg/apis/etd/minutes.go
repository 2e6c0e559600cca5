package etd

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/travigo/bart/pkg/bart"
)

const LeavingText = "Leaving"

// Minutes until a train departs. Zero means the train is leaving now.
type Minutes int

const Leaving Minutes = 0

// ParseMinutes reads "Leaving" or a number. Numbers at or below zero are
// treated as leaving.
func ParseMinutes(s string) (Minutes, error) {
	if s == LeavingText {
		return Leaving, nil
	}

	n, err := strconv.Atoi(s)
	if err != nil {
		return Leaving, fmt.Errorf("%w: minutes %q is neither %q nor a number", bart.ErrDecode, s, LeavingText)
	}

	return MinutesOf(n), nil
}

func MinutesOf(n int) Minutes {
	if n <= 0 {
		return Leaving
	}

	return Minutes(n)
}

func (m Minutes) IsLeaving() bool {
	return m <= Leaving
}

func (m Minutes) String() string {
	if m.IsLeaving() {
		return LeavingText
	}

	return strconv.Itoa(int(m))
}

func (m Minutes) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *Minutes) UnmarshalText(text []byte) error {
	parsed, err := ParseMinutes(string(text))
	if err != nil {
		return err
	}

	*m = parsed
	return nil
}

// UnmarshalJSON also accepts a bare JSON number.
func (m *Minutes) UnmarshalJSON(data []byte) error {
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		*m = MinutesOf(n)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: minutes: %w", bart.ErrDecode, err)
	}

	return m.UnmarshalText([]byte(s))
}
