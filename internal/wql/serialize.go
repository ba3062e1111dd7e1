package wql

import (
	"sort"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// String renders the command back as WQL text. Re-parsing the result
// yields an equal command for every literal the grammar can produce.
func (c CreateEntity) String() string { return "CREATE ENTITY " + c.Name }

func (i Insert) String() string {
	return "INSERT " + i.Payload.String() + " INTO " + i.Name
}

// String renders the payload as a map literal with keys sorted for
// stable output. A space always precedes the closing brace: an unquoted
// value token swallows a directly adjacent `}`, so `{a: 1}` does not
// re-parse but `{a: 1 }` does.
func (e Entity) String() string { return mapString(e) }

func (m Map) String() string { return mapString(m) }

func mapString(m map[string]Value) string {
	if len(m) == 0 {
		return "{}"
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteByte('{')
	for n, k := range keys {
		if n > 0 {
			b.WriteString(", ")
		}
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(m[k].String())
	}
	b.WriteString(" }")
	return b.String()
}

func (c Char) String() string { return "'" + string(rune(c)) + "'" }

func (i Integer) String() string { return strconv.FormatInt(int64(i), 10) }

var stringEscaper = strings.NewReplacer(
	`\`, `\\`, `"`, `\"`, "\t", `\t`, "\r", `\r`, "\n", `\n`,
)

func (s String) String() string {
	return `"` + stringEscaper.Replace(string(s)) + `"`
}

func (u Uuid) String() string { return uuid.UUID(u).String() }

func (f Float) String() string {
	s := strconv.FormatFloat(float64(f), 'f', -1, 64)
	// keep a decimal point so the token re-infers as a float
	if _, err := strconv.ParseInt(s, 10, 64); err == nil {
		s += ".0"
	}
	return s
}

func (b Boolean) String() string { return strconv.FormatBool(bool(b)) }

func (v Vector) String() string {
	parts := make([]string, len(v))
	for n, item := range v {
		parts[n] = item.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func (Nil) String() string { return "nil" }

// Native converts a value to its plain Go representation for JSON
// rendering and storage drivers. Chars and uuids become strings, Nil
// becomes nil.
func Native(v Value) any {
	switch t := v.(type) {
	case Char:
		return string(rune(t))
	case Integer:
		return int64(t)
	case String:
		return string(t)
	case Uuid:
		return uuid.UUID(t).String()
	case Float:
		return float64(t)
	case Boolean:
		return bool(t)
	case Vector:
		out := make([]any, len(t))
		for n, item := range t {
			out[n] = Native(item)
		}
		return out
	case Map:
		out := make(map[string]any, len(t))
		for k, item := range t {
			out[k] = Native(item)
		}
		return out
	default: // Nil
		return nil
	}
}

// Native converts the whole payload, field by field.
func (e Entity) Native() map[string]any {
	out := make(map[string]any, len(e))
	for k, v := range e {
		out[k] = Native(v)
	}
	return out
}
