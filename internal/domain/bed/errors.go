package bed

import "errors"

// Bed domain errors
var (
	ErrBedNotFound     = errors.New("bed not found")
	ErrBedOccupied     = errors.New("bed is already occupied")
	ErrBedUnavailable  = errors.New("bed is not available for assignment")
	ErrBedNumberExists = errors.New("bed number already exists in this ward")
)
