package equipment

import "errors"

// Equipment domain errors
var (
	ErrEquipmentNotFound = errors.New("equipment not found")
)
