package matchers

// Field matcher ids
const (
	ByNameID          = "byName"
	ByNamesID         = "byNames"
	ByRegexpID        = "byRegexp"
	ByRegexpOrNamesID = "byRegexpOrNames"
	ByFrameRefID      = "byFrameRefID"
	ReadOnlyID        = "readOnly"
)

// Frame matcher ids
const (
	FrameByNameID = "byName"
)
