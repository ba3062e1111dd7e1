package engine

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"sort"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/baajarmeh/wooridb/internal/wql"
)

// Record is one inserted row of an entity.
type Record struct {
	ID        string
	CreatedAt time.Time
	Payload   wql.Entity
}

// Mirror receives every successful state change, typically a Postgres
// backend. Mirror failures abort the change.
type Mirror interface {
	EnsureEntity(name string) error
	InsertRecord(entity, id string, createdAt time.Time, payload map[string]any) error
}

// Storage holds every created entity and its records in memory. All
// methods are safe for concurrent use.
type Storage struct {
	mu       sync.RWMutex
	entities map[string]map[string]*Record
	entropy  io.Reader
	mirror   Mirror
}

// NewStorage returns an empty storage. mirror may be nil for in-memory
// only operation.
func NewStorage(mirror Mirror) *Storage {
	src := rand.New(rand.NewSource(time.Now().UnixNano()))
	return &Storage{
		entities: make(map[string]map[string]*Record),
		entropy:  ulid.Monotonic(src, 0),
		mirror:   mirror,
	}
}

// newID must be called with mu held; the monotonic entropy source is not
// concurrency-safe on its own.
func (s *Storage) newID() string {
	return ulid.MustNew(ulid.Timestamp(time.Now()), s.entropy).String()
}

// Result reports what Execute changed.
type Result struct {
	Entity string
	ID     string // set for inserts
}

// Execute applies one parsed command to the storage.
func (s *Storage) Execute(cmd wql.Command) (Result, error) {
	switch c := cmd.(type) {
	case wql.CreateEntity:
		return s.createEntity(c.Name)
	case wql.Insert:
		return s.insert(c.Name, c.Payload)
	default:
		return Result{}, fmt.Errorf("unsupported command %T", cmd)
	}
}

func (s *Storage) createEntity(name string) (Result, error) {
	// The parser passes empty names through; they are rejected here.
	if name == "" {
		return Result{}, errors.New("Entity name is required for CREATE")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.entities[name]; ok {
		return Result{}, EntityAlreadyCreatedError{Name: name}
	}
	if s.mirror != nil {
		if err := s.mirror.EnsureEntity(name); err != nil {
			return Result{}, err
		}
	}
	s.entities[name] = make(map[string]*Record)
	return Result{Entity: name}, nil
}

func (s *Storage) insert(name string, payload wql.Entity) (Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, ok := s.entities[name]
	if !ok {
		return Result{}, EntityNotCreatedError{Name: name}
	}

	id := s.newID()
	now := time.Now().UTC()
	if s.mirror != nil {
		if err := s.mirror.InsertRecord(name, id, now, payload.Native()); err != nil {
			return Result{}, err
		}
	}
	records[id] = &Record{ID: id, CreatedAt: now, Payload: payload}
	return Result{Entity: name, ID: id}, nil
}

// Entities returns the names of all created entities, sorted.
func (s *Storage) Entities() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.entities))
	for name := range s.entities {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Records returns all records of an entity in insertion order (ulids
// sort chronologically). ok is false for an unknown entity.
func (s *Storage) Records(entity string) (recs []*Record, ok bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	byID, ok := s.entities[entity]
	if !ok {
		return nil, false
	}
	recs = make([]*Record, 0, len(byID))
	for _, r := range byID {
		recs = append(recs, r)
	}
	sort.Slice(recs, func(i, j int) bool { return recs[i].ID < recs[j].ID })
	return recs, true
}

// Record returns one record by id.
func (s *Storage) Record(entity, id string) (*Record, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.entities[entity][id]
	return rec, ok
}
