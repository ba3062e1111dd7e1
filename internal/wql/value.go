package wql

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/google/uuid"
)

// inferences is the literal precedence order, evaluated top to bottom.
// First match wins: a token that parses as an integer can never become a
// float, a float never a uuid, and so on down the chain.
var inferences = []func(string) (Value, bool){
	inferInteger,
	inferFloat,
	inferUuid,
	inferBoolean,
	inferNil,
	inferChar,
}

// parseValue interprets one payload value starting at the already
// consumed first rune. A double quote starts a string literal; anything
// else is scanned up to whitespace or comma and typed by inference.
func parseValue(first rune, cur *cursor) (Value, error) {
	if first == '"' {
		return readString(cur)
	}

	token := string(first) + cur.takeWhile(func(r rune) bool {
		return !unicode.IsSpace(r) && r != ','
	})
	return inferValue(token)
}

func inferValue(token string) (Value, error) {
	for _, infer := range inferences {
		if v, ok := infer(token); ok {
			return v, nil
		}
	}
	return nil, fmt.Errorf("Value type could not be inferred from `%s`", token)
}

func inferInteger(token string) (Value, bool) {
	n, err := strconv.ParseInt(token, 10, 64)
	return Integer(n), err == nil
}

func inferFloat(token string) (Value, bool) {
	f, err := strconv.ParseFloat(token, 64)
	return Float(f), err == nil
}

func inferUuid(token string) (Value, bool) {
	u, err := uuid.Parse(token)
	return Uuid(u), err == nil
}

func inferBoolean(token string) (Value, bool) {
	b, err := strconv.ParseBool(token)
	return Boolean(b), err == nil
}

func inferNil(token string) (Value, bool) {
	return Nil{}, strings.EqualFold(token, "nil")
}

// inferChar accepts exactly three runes wrapped in straight quotes, 'x'.
func inferChar(token string) (Value, bool) {
	rs := []rune(token)
	if len(rs) == 3 && rs[0] == '\'' && rs[2] == '\'' {
		return Char(rs[1]), true
	}
	return nil, false
}

// readString consumes a double-quoted literal, the opening quote already
// gone. Escapes follow the EDN set: \t \r \n \\ \".
func readString(cur *cursor) (Value, error) {
	var b strings.Builder
	escaped := false
	for {
		r, ok := cur.next()
		if !ok {
			return nil, errors.New("Unterminated string")
		}
		if escaped {
			switch r {
			case 't':
				b.WriteRune('\t')
			case 'r':
				b.WriteRune('\r')
			case 'n':
				b.WriteRune('\n')
			case '\\':
				b.WriteRune('\\')
			case '"':
				b.WriteRune('"')
			default:
				return nil, fmt.Errorf("Invalid escape sequence \\%c", r)
			}
			escaped = false
			continue
		}
		switch r {
		case '"':
			return String(b.String()), nil
		case '\\':
			escaped = true
		default:
			b.WriteRune(r)
		}
	}
}
