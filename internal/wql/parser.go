package wql

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// Parse turns one WQL statement into a Command. It consumes the input in
// a single pass and keeps no state between calls, so it is safe to call
// from any number of goroutines.
func Parse(query string) (Command, error) {
	cur := newCursor(strings.TrimLeftFunc(query, unicode.IsSpace))
	first, ok := cur.next()
	if !ok {
		return nil, errors.New("Empty WQL")
	}
	return readSymbol(first, cur)
}

func notSpace(r rune) bool { return !unicode.IsSpace(r) }

func isIdent(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

// readSymbol dispatches on the leading keyword: the already-consumed
// first rune plus its whitespace-delimited remainder.
func readSymbol(first rune, cur *cursor) (Command, error) {
	rest := cur.takeWhile(notSpace)
	switch {
	case (first == 'c' || first == 'C') && strings.ToUpper(rest) == "REATE":
		return createEntity(cur)
	case (first == 'i' || first == 'I') && strings.ToUpper(rest) == "NSERT":
		return insert(cur)
	default:
		return nil, fmt.Errorf("Symbol `%c%s` not implemented", first, rest)
	}
}

func createEntity(cur *cursor) (Command, error) {
	if kw := cur.takeWhile(notSpace); strings.ToUpper(kw) != "ENTITY" {
		return nil, errors.New("Keyword ENTITY is required for CREATE")
	}
	// An empty name passes through here; the engine rejects it.
	name := strings.TrimSpace(cur.takeWhile(isIdent))
	return CreateEntity{Name: name}, nil
}

func insert(cur *cursor) (Command, error) {
	payload, err := readMap(cur)
	if err != nil {
		return nil, err
	}

	// INTO sits after the payload; leading whitespace is skipped, the
	// first non-space rune starts the keyword.
	var kw strings.Builder
	for {
		r, ok := cur.next()
		if !ok {
			break
		}
		if unicode.IsSpace(r) {
			continue
		}
		kw.WriteRune(r)
		kw.WriteString(cur.takeWhile(notSpace))
		break
	}
	if strings.ToUpper(kw.String()) != "INTO" {
		return nil, errors.New("Keyword INTO is required for INSERT")
	}

	name := strings.TrimSpace(cur.takeWhile(isIdent))
	if name == "" {
		return nil, errors.New("Entity name is required after INTO")
	}
	return Insert{Name: name, Payload: payload}, nil
}

// readMap parses `{` entry* `}` with whitespace and commas as free-form
// separators. Later entries overwrite earlier ones with the same key.
func readMap(cur *cursor) (Entity, error) {
	res := Entity{}
	var key string
	var val Value
	haveKey := false

	if r, ok := cur.next(); !ok || r != '{' {
		return nil, errors.New("Entity map should start with `{` and end with `}`")
	}

	for {
		r, ok := cur.next()
		switch {
		case !ok:
			return nil, errors.New("Entity map could not be created")
		case r == '}':
			// A key still pending without a value is dropped here.
			return res, nil
		case unicode.IsSpace(r) || r == ',':
			// separator
		case haveKey:
			v, err := parseValue(r, cur)
			if err != nil {
				return nil, err
			}
			val = v
		default:
			key = readKey(r, cur)
			haveKey = true
		}

		if haveKey && val != nil {
			res[key] = val
			haveKey = false
			val = nil
		}
	}
}

// readKey collects an identifier run. The rune that stops the run is
// discarded unchecked: `:` by convention, but any single character
// separates a key from its value.
func readKey(first rune, cur *cursor) string {
	return string(first) + cur.takeWhile(isIdent)
}
