package patient

import "errors"

// Patient domain errors
var (
	ErrPatientNotFound   = errors.New("patient not found")
	ErrPatientDischarged = errors.New("patient has already been discharged")
	ErrPatientHasBed     = errors.New("patient already occupies a bed")
	ErrPatientHasNoBed   = errors.New("patient has no bed assigned")
)
