package bart

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/travigo/bart/pkg/fields"
)

// Message is the "message" element every response carries. It is an empty
// string most of the time, otherwise an object holding a legend, a warning
// or an error.
type Message struct {
	Text    string        `json:"text,omitempty"`
	Legend  fields.CDATA  `json:"legend,omitempty"`
	Warning fields.CDATA  `json:"warning,omitempty"`
	Error   *ErrorMessage `json:"error,omitempty"`
}

type ErrorMessage struct {
	Text    fields.CDATA `json:"text"`
	Details fields.CDATA `json:"details"`
}

func (m *Message) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	switch {
	case len(data) == 0 || bytes.Equal(data, []byte("null")):
		*m = Message{}
		return nil
	case data[0] == '"':
		var text string
		if err := json.Unmarshal(data, &text); err != nil {
			return err
		}
		*m = Message{Text: text}
		return nil
	case data[0] == '{':
		type plain Message
		var decoded plain
		if err := json.Unmarshal(data, &decoded); err != nil {
			return fmt.Errorf("%w: message: %w", ErrDecode, err)
		}
		*m = Message(decoded)
		return nil
	}

	return fmt.Errorf("%w: unexpected message %s", ErrDecode, data)
}

func (m Message) IsEmpty() bool {
	return m.Text == "" && m.Legend == "" && m.Warning == "" && m.Error == nil
}
