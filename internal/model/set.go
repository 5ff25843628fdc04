package model

import "encoding/json"

// StringSet holds unique strings with irrelevant order. The zero value is
// ready to use; a nil set marshals as an empty JSON array.
type StringSet []string

// Add inserts v unless it is already present.
func (s *StringSet) Add(v string) {
	for _, e := range *s {
		if e == v {
			return
		}
	}
	*s = append(*s, v)
}

// Contains reports whether v is in the set.
func (s StringSet) Contains(v string) bool {
	for _, e := range s {
		if e == v {
			return true
		}
	}
	return false
}

func (s StringSet) MarshalJSON() ([]byte, error) {
	if s == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(s))
}

func (s *StringSet) UnmarshalJSON(data []byte) error {
	var raw []string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*s = nil
	for _, v := range raw {
		s.Add(v)
	}
	return nil
}
