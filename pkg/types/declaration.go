package types

// Declaration binds one dependency to one working-copy path
type Declaration struct {
	Dependency *Coordinate
	Path       string
}

// DependencyString renders the dependency for messages, tolerating a
// missing dependency
func (d Declaration) DependencyString() string {
	if d.Dependency == nil {
		return "<none>"
	}
	return d.Dependency.String()
}
