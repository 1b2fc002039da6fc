package event

import "encoding/json"

// DecodePayload converts an event payload into T. In-process publishes carry
// the struct itself (or a pointer to it); payloads read back from the
// dead-letter file arrive as generic maps and go through a JSON round-trip.
func DecodePayload[T any](input interface{}) (T, error) {
	switch v := input.(type) {
	case T:
		return v, nil
	case *T:
		if v != nil {
			return *v, nil
		}
	}

	var result T
	data, err := json.Marshal(input)
	if err != nil {
		return result, err
	}
	return result, json.Unmarshal(data, &result)
}
