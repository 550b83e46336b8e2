package program

import (
	"time"

	"github.com/google/uuid"
)

// Meta describes who generated a program and how. It is written as
// header comments only and never influences the emitted toolpaths.
type Meta struct {
	Name        string
	Description string
	Author      string
	Host        string
	CommandLine string
	CreatedAt   time.Time
	ID          uuid.UUID
}
