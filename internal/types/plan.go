package types

// BuildUnit aggregates the recipe packages that share one recipe
// location (repo_url, repo_path). Units are derived fresh from a
// snapshot on every planning run and are never persisted.
type BuildUnit struct {
	RepoURL     string
	RepoPath    string
	Name        string
	Version     string
	NeedsSource bool

	// Packages holds the pkgnames the unit builds. Provides is always a
	// superset of Packages: a package provides its own name.
	Packages map[string]struct{}
	Provides map[string]struct{}

	// MakeDepends is the transitive build closure of Packages.
	MakeDepends map[string]struct{}
}

// PlanEntry is one ordered element of the build queue, as consumed by
// the presentation layer. Packages and Depends group names by their
// owning repo.
type PlanEntry struct {
	RepoURL  string              `json:"repo_url" yaml:"repo_url"`
	RepoPath string              `json:"repo_path" yaml:"repo_path"`
	Version  string              `json:"version" yaml:"version"`
	Name     string              `json:"name" yaml:"name"`
	Source   bool                `json:"source" yaml:"source"`
	Packages map[string][]string `json:"packages" yaml:"packages"`
	Depends  map[string][]string `json:"depends" yaml:"depends"`
}

// Removal is a built package that no longer has a recipe counterpart.
type Removal struct {
	Repo string `json:"repo" yaml:"repo"`
	Name string `json:"name" yaml:"name"`
}
