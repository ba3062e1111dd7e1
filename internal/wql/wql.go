// Package wql parses WooriDB's query language into typed commands.
//
// A query is a single statement, either
//
//	CREATE ENTITY <name>
//	INSERT {<key>: <value>, ...} INTO <name>
//
// Parsing is a single forward pass over the text; values inside the
// insert payload are typed by an ordered inference over the raw token.
package wql

import (
	"fmt"

	"github.com/google/uuid"
)

// Command is one parsed WQL statement.
type Command interface {
	fmt.Stringer
	command()
}

// CreateEntity registers a new entity type under Name.
type CreateEntity struct {
	Name string
}

// Insert adds one record with Payload to the entity Name.
type Insert struct {
	Name    string
	Payload Entity
}

func (CreateEntity) command() {}
func (Insert) command()       {}

// Entity maps field names to typed values. Keys are identifiers
// (alphanumeric and underscore); ordering is irrelevant.
type Entity map[string]Value

// Value is one WQL literal. A value is exactly one variant at a time;
// consumers are expected to switch exhaustively over the variant types.
type Value interface {
	fmt.Stringer
	value()
}

type (
	Char    rune
	Integer int64
	String  string
	Uuid    uuid.UUID
	Float   float64
	Boolean bool
	// Vector and Map are not yet reachable from the grammar; they exist
	// for downstream consumers and future syntax.
	Vector []Value
	Map    map[string]Value
	Nil    struct{}
)

func (Char) value()    {}
func (Integer) value() {}
func (String) value()  {}
func (Uuid) value()    {}
func (Float) value()   {}
func (Boolean) value() {}
func (Vector) value()  {}
func (Map) value()     {}
func (Nil) value()     {}
