package core

// Ordering is a single sort key parsed from an `ordering=field,-other` query param.
type Ordering struct {
	Field     string
	Ascending bool
}
