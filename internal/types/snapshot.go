package types

// BinaryPackage is a built package as recorded in the pacman repository
// database. Depends and MakeDepends map dependency names to their raw
// version constraint string; constraints are informational only, the
// planner resolves edges by name.
type BinaryPackage struct {
	Name        string            `yaml:"name" json:"name"`
	RealName    string            `yaml:"realname,omitempty" json:"realname,omitempty"`
	Version     string            `yaml:"version" json:"version"`
	Repo        string            `yaml:"repo" json:"repo"`
	Depends     map[string]string `yaml:"depends,omitempty" json:"depends,omitempty"`
	MakeDepends map[string]string `yaml:"makedepends,omitempty" json:"makedepends,omitempty"`
	Provides    []string          `yaml:"provides,omitempty" json:"provides,omitempty"`
}

// Source is a built source package (pkgbase) together with the binary
// packages it owns.
type Source struct {
	Name     string          `yaml:"name" json:"name"`
	RealName string          `yaml:"realname,omitempty" json:"realname,omitempty"`
	Version  string          `yaml:"version" json:"version"`
	Packages []BinaryPackage `yaml:"packages" json:"packages"`
}

// RecipePackage is a package as declared by the latest build recipe
// (.SRCINFO), independent of whether it has been built yet.
type RecipePackage struct {
	Name         string            `yaml:"pkgname" json:"pkgname"`
	Base         string            `yaml:"pkgbase" json:"pkgbase"`
	BuildVersion string            `yaml:"build_version" json:"build_version"`
	Repo         string            `yaml:"repo" json:"repo"`
	RepoURL      string            `yaml:"repo_url" json:"repo_url"`
	RepoPath     string            `yaml:"repo_path" json:"repo_path"`
	Depends      map[string]string `yaml:"depends,omitempty" json:"depends,omitempty"`
	MakeDepends  map[string]string `yaml:"makedepends,omitempty" json:"makedepends,omitempty"`
	Provides     []string          `yaml:"provides,omitempty" json:"provides,omitempty"`
}

// Snapshot is the immutable per-request view of the metadata store:
// built-package state plus live recipe metadata. The planner never
// mutates it and never reaches past it for more data.
type Snapshot struct {
	Sources []Source        `yaml:"sources" json:"sources"`
	Recipes []RecipePackage `yaml:"recipes" json:"recipes"`
}
