package types

// Scm is the source-control section of a project's metadata
type Scm struct {
	URL                 string
	Connection          string
	DeveloperConnection string
	Tag                 string
}

// Project is the published metadata of a resolved dependency
type Project struct {
	Coordinate Coordinate
	Name       string
	// Scm is nil when the project declares no source control
	Scm *Scm
}
