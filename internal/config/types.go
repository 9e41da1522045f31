package config

// Strategy kinds, in the order they typically appear in a fallback chain.
// The Kind field on Strategy selects which of the remaining fields apply,
// mirroring how a tool's install method is dispatched at run time.
const (
	KindPackageManager  = "package-manager"  // invoke a package manager command (winget)
	KindClone           = "clone"            // clone a source repository with the version-control tool
	KindDownloadRun     = "download-run"     // resolve, download, and run an installer executable
	KindDownloadExtract = "download-extract" // resolve, download, and extract an archive
)

// PATH scope names used by Strategy.PathScope.
const (
	ScopeMachine = "machine"
	ScopeUser    = "user"
)

// Strategy is one method of installing a tool. A ToolSpec holds an ordered
// list of these as its fallback chain; each is attempted in order until one
// succeeds or all are exhausted.
//
// Which fields are meaningful depends on Kind:
//   - package-manager: Command
//   - clone: CloneTool, RepoURL, Branch, CloneDir (plus PathAppend/PathScope)
//   - download-run: PageURL, Pattern, URLPrefix, InstallerArgs
//   - download-extract: PageURL, Pattern, URLPrefix, TargetDir, RenameTo
//     (plus PathAppend/PathScope)
type Strategy struct {
	Kind string `yaml:"kind"`

	// Package manager invocation, argv style (e.g. winget install --id ...).
	Command []string `yaml:"command,omitempty"`

	// Source-control clone. CloneTool is the executable that performs the
	// clone and must already be locatable when this strategy runs.
	CloneTool string `yaml:"clone_tool,omitempty"`
	RepoURL   string `yaml:"repo_url,omitempty"`
	Branch    string `yaml:"branch,omitempty"`
	CloneDir  string `yaml:"clone_dir,omitempty"`

	// Remote resolution: the page to fetch, the regular expression whose
	// first match is the asset, and an optional host prefix prepended to it.
	PageURL   string `yaml:"page_url,omitempty"`
	Pattern   string `yaml:"pattern,omitempty"`
	URLPrefix string `yaml:"url_prefix,omitempty"`

	// Arguments passed to a downloaded installer (download-run).
	InstallerArgs []string `yaml:"installer_args,omitempty"`

	// Extraction target (download-extract). If the archive nests an extra
	// directory level, it is renamed to RenameTo inside TargetDir.
	TargetDir string `yaml:"target_dir,omitempty"`
	RenameTo  string `yaml:"rename_to,omitempty"`

	// Directory appended to the persisted PATH after the strategy's action
	// succeeds. PathScope selects the machine or user partition; a denied
	// machine-scope write is downgraded to a warning, not a failure.
	PathAppend string `yaml:"path_append,omitempty"`
	PathScope  string `yaml:"path_scope,omitempty"`
}

// ToolSpec describes one tool the bootstrapper is responsible for.
// Specs are constructed once at startup and never mutated.
//
// Required tools abort the whole run when every strategy is exhausted;
// optional tools (ConfirmPrompt non-empty) need an explicit user opt-in
// before any strategy is attempted and only abort their own sub-flow.
type ToolSpec struct {
	Name        string   `yaml:"name"`
	Executables []string `yaml:"executables"`
	Required    bool     `yaml:"required"`

	// ConfirmPrompt, when set, gates the tool behind a yes/no question.
	ConfirmPrompt string `yaml:"confirm_prompt,omitempty"`

	// ManualURL is shown when the fallback chain is exhausted.
	ManualURL string `yaml:"manual_url"`

	Strategies []Strategy `yaml:"strategies"`
}
