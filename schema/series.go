package schema

import "github.com/google/uuid"

type Series struct {
	Name string    `json:"name"`
	Uid  string    `json:"uuid"`
	Type FieldType `json:"type"`

	// sealed segments, in seal order
	Segments []uuid.UUID `json:"segments"`
}
