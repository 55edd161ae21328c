package api

import (
	"encoding/json"
	"errors"
)

var errNoBookingID = errors.New("booking id missing from response")

// NormalizeBookingID finds the id of a newly created booking. The backend
// has been seen to answer with the document itself, or nested under "data"
// or "booking", keyed "_id" or "id".
func NormalizeBookingID(body []byte) (string, error) {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(body, &doc); err != nil {
		return "", err
	}
	if id := idOf(doc); id != "" {
		return id, nil
	}
	for _, key := range []string{"data", "booking"} {
		nested, ok := object(doc[key])
		if !ok {
			continue
		}
		if id := idOf(nested); id != "" {
			return id, nil
		}
		if inner, ok := object(nested["booking"]); ok {
			if id := idOf(inner); id != "" {
				return id, nil
			}
		}
	}
	return "", errNoBookingID
}

func object(raw json.RawMessage) (map[string]json.RawMessage, bool) {
	if len(raw) == 0 {
		return nil, false
	}
	var m map[string]json.RawMessage
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, false
	}
	return m, true
}

func idOf(doc map[string]json.RawMessage) string {
	for _, key := range []string{"_id", "id"} {
		var s string
		if err := json.Unmarshal(doc[key], &s); err == nil && s != "" {
			return s
		}
	}
	return ""
}
