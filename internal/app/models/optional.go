package models

import "encoding/json"

// OptionalInt64 is a nullable id field in a partial-update payload. It
// distinguishes an absent key (Set false) from an explicit null (Set true,
// Valid false) so a nullable column can be cleared, not just overwritten.
type OptionalInt64 struct {
	Set   bool
	Valid bool
	Value int64
}

// UnmarshalJSON records that the key was present; a null payload leaves
// Valid false.
func (o *OptionalInt64) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		o.Valid = false
		return nil
	}
	if err := json.Unmarshal(data, &o.Value); err != nil {
		return err
	}
	o.Valid = true
	return nil
}
