package types

// ProjectResult holds the result of the 'new' and 'init' commands.
type ProjectResult struct {
	Command string       `yaml:"command"` // "new", "init"
	Plan    *ProjectPlan `yaml:"plan"`
	Author  string       `yaml:"author"`
	Notices []string     `yaml:"notices,omitempty"`
	DryRun  bool         `yaml:"dry_run"`

	// Manifest is the rendered manifest; only set for dry runs
	Manifest string `yaml:"manifest,omitempty"`

	RepositoryCreated bool     `yaml:"repository_created"`
	IgnoreFile        string   `yaml:"ignore_file,omitempty"`
	FilesCreated      []string `yaml:"files_created,omitempty"`
	FilesKept         []string `yaml:"files_kept,omitempty"`
}
