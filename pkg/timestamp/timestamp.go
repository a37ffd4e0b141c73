// Package timestamp provides a JSON timestamp type compatible with the
// document-store representation the booking client was written against:
// an object carrying `_seconds` and `_nanoseconds` fields. The client
// reconstructs display dates from `_seconds`, so the wire shape is a
// compatibility constraint.
package timestamp

import (
	"encoding/json"
	"time"
)

// Timestamp wraps time.Time and serializes as
// {"_seconds": <unix seconds>, "_nanoseconds": <nanos within second>}.
type Timestamp struct {
	time.Time
}

type wireTimestamp struct {
	Seconds     int64 `json:"_seconds"`
	Nanoseconds int   `json:"_nanoseconds"`
}

// New returns a Timestamp for the given time.
func New(t time.Time) Timestamp {
	return Timestamp{Time: t}
}

// Now returns the current instant as a Timestamp.
func Now() Timestamp {
	return Timestamp{Time: time.Now()}
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(wireTimestamp{
		Seconds:     t.Unix(),
		Nanoseconds: t.Nanosecond(),
	})
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	var w wireTimestamp
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	t.Time = time.Unix(w.Seconds, int64(w.Nanoseconds)).UTC()
	return nil
}
