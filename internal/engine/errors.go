package engine

import "fmt"

// EntityAlreadyCreatedError is returned by CREATE ENTITY when the name
// is already taken.
type EntityAlreadyCreatedError struct {
	Name string
}

func (e EntityAlreadyCreatedError) Error() string {
	return fmt.Sprintf("Entity `%s` already created", e.Name)
}

// EntityNotCreatedError is returned by INSERT when the target entity was
// never created.
type EntityNotCreatedError struct {
	Name string
}

func (e EntityNotCreatedError) Error() string {
	return fmt.Sprintf("Entity `%s` has not been created", e.Name)
}
