package wql

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEmpty(t *testing.T) {
	_, err := Parse("")
	require.EqualError(t, err, "Empty WQL")

	_, err = Parse("   \n\t ")
	require.EqualError(t, err, "Empty WQL")
}

func TestParseCreateEntity(t *testing.T) {
	for _, query := range []string{
		"CREATE ENTITY entity",
		"create entity entity",
		"Create Entity entity",
	} {
		cmd, err := Parse(query)
		require.NoError(t, err, query)
		assert.Equal(t, CreateEntity{Name: "entity"}, cmd, query)
	}

	cmd, err := Parse("CREATE ENTITY my_entity_2")
	require.NoError(t, err)
	assert.Equal(t, CreateEntity{Name: "my_entity_2"}, cmd)
}

func TestParseCreateLeadingWhitespace(t *testing.T) {
	cmd, err := Parse("\n  CREATE ENTITY padded")
	require.NoError(t, err)
	assert.Equal(t, CreateEntity{Name: "padded"}, cmd)
}

func TestParseCreateWrongSecondKeyword(t *testing.T) {
	_, err := Parse("CREATE SHIT oh_yeah")
	require.EqualError(t, err, "Keyword ENTITY is required for CREATE")
}

func TestParseUnknownSymbol(t *testing.T) {
	_, err := Parse("KREATE ENTITY mispelled")
	require.EqualError(t, err, "Symbol `KREATE` not implemented")

	_, err = Parse("drop entity gone")
	require.EqualError(t, err, "Symbol `drop` not implemented")
}

// The scanner discards exactly one delimiter after each token, so extra
// whitespace between keywords is not absorbed. These pin the literal
// behavior rather than a cleaned-up one.
func TestParseCreateMultipleSpaces(t *testing.T) {
	// second space stops the ENTITY scan immediately
	_, err := Parse("CREATE  ENTITY spaced")
	require.EqualError(t, err, "Keyword ENTITY is required for CREATE")

	// second space stops the name scan: empty name passes through
	cmd, err := Parse("CREATE ENTITY  spaced")
	require.NoError(t, err)
	assert.Equal(t, CreateEntity{Name: ""}, cmd)
}

func TestParseInsert(t *testing.T) {
	cmd, err := Parse(`INSERT {
		a: 123,
		b: 12.3,
		c: 'd' ,
		d: true ,
		e: false,
		f: "hello",
		g: NiL
	} INTO my_entity`)

	require.NoError(t, err)
	assert.Equal(t, Insert{
		Name: "my_entity",
		Payload: Entity{
			"a": Integer(123),
			"b": Float(12.3),
			"c": Char('d'),
			"d": Boolean(true),
			"e": Boolean(false),
			"f": String("hello"),
			"g": Nil{},
		},
	}, cmd)
}

func TestParseInsertSingleLine(t *testing.T) {
	cmd, err := Parse(`INSERT {a: 123, b: 12.3,} INTO my_entity`)
	require.NoError(t, err)
	assert.Equal(t, Insert{
		Name:    "my_entity",
		Payload: Entity{"a": Integer(123), "b": Float(12.3)},
	}, cmd)
}

func TestParseInsertEmptyMap(t *testing.T) {
	cmd, err := Parse("INSERT {} INTO my_entity")
	require.NoError(t, err)
	assert.Equal(t, Insert{Name: "my_entity", Payload: Entity{}}, cmd)
}

func TestParseInsertMissingInto(t *testing.T) {
	_, err := Parse(`INSERT {
		a: 123,
	} INTRO my_entity`)
	require.EqualError(t, err, "Keyword INTO is required for INSERT")
}

func TestParseInsertMissingEntityName(t *testing.T) {
	_, err := Parse(`INSERT {
		a: 123,
	} INTO `)
	require.EqualError(t, err, "Entity name is required after INTO")
}

func TestParseInsertMapMustStartWithBrace(t *testing.T) {
	_, err := Parse("INSERT [a: 123] INTO t")
	require.EqualError(t, err, "Entity map should start with `{` and end with `}`")

	// two spaces after INSERT: the map scan starts on the second space
	_, err = Parse("INSERT  {a: 123} INTO t")
	require.EqualError(t, err, "Entity map should start with `{` and end with `}`")
}

func TestParseInsertUnterminatedMap(t *testing.T) {
	_, err := Parse("INSERT {a: 123")
	require.EqualError(t, err, "Entity map could not be created")
}

func TestParseInsertUuid(t *testing.T) {
	cmd, err := Parse("INSERT {id: 123e4567-e89b-12d3-a456-426614174000 } INTO t")
	require.NoError(t, err)
	assert.Equal(t, Insert{
		Name: "t",
		Payload: Entity{
			"id": Uuid(uuid.MustParse("123e4567-e89b-12d3-a456-426614174000")),
		},
	}, cmd)
}

func TestParseInsertNegativeNumbers(t *testing.T) {
	cmd, err := Parse("INSERT {a: -42, b: -12.3 } INTO t")
	require.NoError(t, err)
	assert.Equal(t, Insert{
		Name:    "t",
		Payload: Entity{"a": Integer(-42), "b": Float(-12.3)},
	}, cmd)
}

func TestParseInsertStringEscapes(t *testing.T) {
	cmd, err := Parse(`INSERT {s: "a\tb\rc\nd\\e\"f"} INTO t`)
	require.NoError(t, err)
	assert.Equal(t, Insert{
		Name:    "t",
		Payload: Entity{"s": String("a\tb\rc\nd\\e\"f")},
	}, cmd)
}

func TestParseInsertInvalidEscape(t *testing.T) {
	_, err := Parse(`INSERT {s: "a\qb"} INTO t`)
	require.EqualError(t, err, `Invalid escape sequence \q`)
}

func TestParseInsertUnterminatedString(t *testing.T) {
	_, err := Parse(`INSERT {s: "abc} INTO t`)
	require.EqualError(t, err, "Unterminated string")
}

func TestParseInsertUninferrableValue(t *testing.T) {
	_, err := Parse("INSERT {a: hello } INTO t")
	require.EqualError(t, err, "Value type could not be inferred from `hello`")
}

func TestParseInsertDuplicateKeyOverwrites(t *testing.T) {
	cmd, err := Parse("INSERT {a: 1, a: 2,} INTO t")
	require.NoError(t, err)
	assert.Equal(t, Insert{Name: "t", Payload: Entity{"a": Integer(2)}}, cmd)
}

// A key pending at `}` is dropped without error, as long as a separator
// sits between the key and the closing brace.
func TestParseInsertDanglingKeyDropped(t *testing.T) {
	cmd, err := Parse("INSERT {a: 123, b } INTO t")
	require.NoError(t, err)
	assert.Equal(t, Insert{Name: "t", Payload: Entity{"a": Integer(123)}}, cmd)
}

// The rune after a key is discarded without inspection; `:` is only a
// convention.
func TestParseInsertPermissiveKeySeparator(t *testing.T) {
	for _, query := range []string{
		"INSERT {a: 123 } INTO t",
		"INSERT {a= 123 } INTO t",
		"INSERT {a 123 } INTO t",
	} {
		cmd, err := Parse(query)
		require.NoError(t, err, query)
		assert.Equal(t, Insert{Name: "t", Payload: Entity{"a": Integer(123)}}, cmd, query)
	}
}

func TestParseInsertCommaOnlySeparators(t *testing.T) {
	cmd, err := Parse("INSERT {a: 1,b: 2,,c: 3,} INTO t")
	require.NoError(t, err)
	assert.Equal(t, Insert{
		Name:    "t",
		Payload: Entity{"a": Integer(1), "b": Integer(2), "c": Integer(3)},
	}, cmd)
}

// An unquoted value scan only stops on whitespace or comma, so a value
// written flush against `}` swallows the brace into the token.
func TestParseInsertValueAbuttingBrace(t *testing.T) {
	_, err := Parse("INSERT {a: 123} INTO t")
	require.EqualError(t, err, "Value type could not be inferred from `123}`")
}
