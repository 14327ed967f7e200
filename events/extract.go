package events

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
)

// Repeated member names keep the last value, as the event writer's own JSON reader does.
var allowDuplicates = jsontext.AllowDuplicateNames(true)

type record struct {
	EventType jsontext.Value `json:"event_type"`
	Data      jsontext.Value `json:"data"`
}

// ExtractFile reads the event file and returns the PRINT_DONE events it contains.
func ExtractFile(file string) ([]PrintEvent, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}

	defer f.Close()

	return Extract(f)
}

// Extract parses an event file and returns the PRINT_DONE events in document order.
// A document that decodes to an empty object, array or string has no events.
func Extract(r io.Reader) ([]PrintEvent, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var doc any
	if err := json.Unmarshal(b, &doc, allowDuplicates); err != nil {
		return nil, fmt.Errorf("%w (%v)", ErrParse, err)
	}

	switch v := doc.(type) {
	case map[string]any:
		if len(v) == 0 {
			return []PrintEvent{}, nil
		}

	case []any:
		if len(v) == 0 {
			return []PrintEvent{}, nil
		}
		return nil, fmt.Errorf("%w: expected an object, got an array", ErrStructure)

	case string:
		if v == "" {
			return []PrintEvent{}, nil
		}
		return nil, fmt.Errorf("%w: expected an object, got a string", ErrStructure)

	default:
		return nil, fmt.Errorf("%w: expected an object", ErrStructure)
	}

	var document struct {
		Events jsontext.Value `json:"events"`
	}

	if err := json.Unmarshal(b, &document, allowDuplicates); err != nil {
		return nil, fmt.Errorf("%w (%v)", ErrParse, err)
	}

	if len(document.Events) == 0 {
		return nil, fmt.Errorf("%w: missing 'events'", ErrStructure)
	} else if document.Events.Kind() != '{' {
		return nil, fmt.Errorf("%w: 'events' is not an object", ErrStructure)
	}

	return extract(document.Events)
}

// extract walks the 'events' object member by member so that the returned list
// follows the order of the file rather than map iteration order. A repeated id
// keeps the position of its first occurrence and the value of its last.
func extract(events jsontext.Value) ([]PrintEvent, error) {
	type member struct {
		id    string
		value jsontext.Value
	}

	members := []member{}
	index := map[string]int{}
	dec := jsontext.NewDecoder(bytes.NewReader(events), allowDuplicates)

	if _, err := dec.ReadToken(); err != nil {
		return nil, fmt.Errorf("%w (%v)", ErrParse, err)
	}

	for dec.PeekKind() == '"' {
		token, err := dec.ReadToken()
		if err != nil {
			return nil, fmt.Errorf("%w (%v)", ErrParse, err)
		}

		id := token.String()

		value, err := dec.ReadValue()
		if err != nil {
			return nil, fmt.Errorf("%w (%v)", ErrParse, err)
		}

		if ix, ok := index[id]; ok {
			members[ix].value = value.Clone()
		} else {
			index[id] = len(members)
			members = append(members, member{id, value.Clone()})
		}
	}

	list := []PrintEvent{}
	for _, m := range members {
		var r record
		if err := json.Unmarshal(m.value, &r, allowDuplicates); err != nil {
			return nil, fmt.Errorf("%w: event %s (%v)", ErrStructure, m.id, err)
		}

		if len(r.EventType) == 0 {
			return nil, fmt.Errorf("%w: event %s has no 'event_type'", ErrStructure, m.id)
		}

		if !isPrintDone(r.EventType) {
			continue
		}

		if r.Data.Kind() != '{' {
			return nil, fmt.Errorf("%w: event %s has no 'data' object", ErrStructure, m.id)
		}

		data, err := payload(r.Data)
		if err != nil {
			return nil, fmt.Errorf("%w: event %s (%v)", ErrStructure, m.id, err)
		}

		list = append(list, PrintEvent{
			ID:   m.id,
			Data: data,
		})
	}

	return list, nil
}

// payload decodes a 'data' object, keeping top level numbers as their literal.
func payload(data jsontext.Value) (Payload, error) {
	fields := map[string]jsontext.Value{}
	if err := json.Unmarshal(data, &fields, allowDuplicates); err != nil {
		return nil, err
	}

	p := Payload{}
	for k, v := range fields {
		if v.Kind() == '0' {
			p[k] = Number(bytes.TrimSpace(v))
			continue
		}

		var value any
		if err := json.Unmarshal(v, &value, allowDuplicates); err != nil {
			return nil, err
		}

		p[k] = value
	}

	return p, nil
}

func isPrintDone(tag jsontext.Value) bool {
	var s string

	if tag.Kind() != '"' {
		return false
	} else if err := json.Unmarshal(tag, &s); err != nil {
		return false
	}

	return s == PrintDone
}
