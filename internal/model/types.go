package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// StringList is a []string stored as a JSON column.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal([]string(l))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, (*[]string)(l))
	case string:
		return json.Unmarshal([]byte(v), (*[]string)(l))
	default:
		return fmt.Errorf("cannot scan %T into StringList", value)
	}
}

// AnswerKey holds a challenge's correct answer. Multiple-choice and
// audio-recognition challenges carry a single answer string; translation
// builders carry the answer as an ordered word sequence. Clients may send
// either a JSON string or a JSON array, so both are accepted on input, and
// a single-word key is rendered back as a plain string.
type AnswerKey []string

func (a *AnswerKey) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*a = AnswerKey{single}
		return nil
	}
	return json.Unmarshal(data, (*[]string)(a))
}

func (a AnswerKey) MarshalJSON() ([]byte, error) {
	if len(a) == 1 {
		return json.Marshal(a[0])
	}
	return json.Marshal([]string(a))
}

// Single returns the answer for single-answer challenge kinds.
func (a AnswerKey) Single() string {
	if len(a) == 0 {
		return ""
	}
	return a[0]
}

// Words returns the ordered answer sequence for translation builders.
func (a AnswerKey) Words() []string {
	return []string(a)
}

func (a AnswerKey) Value() (driver.Value, error) {
	return StringList(a).Value()
}

func (a *AnswerKey) Scan(value interface{}) error {
	return (*StringList)(a).Scan(value)
}
