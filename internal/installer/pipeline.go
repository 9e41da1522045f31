package installer

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"flutter-bootstrap/internal/config"
	"flutter-bootstrap/internal/envpath"
	"flutter-bootstrap/internal/logger"
)

// Status is the result class of one Ensure call.
type Status int

const (
	// AlreadyPresent: the tool resolved before any strategy ran.
	AlreadyPresent Status = iota
	// Installed: a strategy succeeded and the tool resolved afterwards.
	Installed
	// Failed: every strategy was exhausted without the tool resolving.
	Failed
)

// Outcome is produced once per tool per run and never persisted; each run
// re-detects from scratch.
type Outcome struct {
	Status   Status
	Strategy int // index of the strategy that installed the tool, -1 otherwise
}

// Pipeline runs the per-tool detect, ordered-fallback-install, re-verify
// sequence. All collaborators are injectable so the sequencing can be
// tested with scripted fakes.
type Pipeline struct {
	Paths     *envpath.Synchronizer
	Runner    ProcessRunner
	Resolver  Resolver
	Fetcher   Fetcher
	Extractor Extractor

	// DownloadDir receives resolved installer/archive downloads.
	DownloadDir string
}

// NewPipeline wires the real collaborators. confirm answers the
// destructive-overwrite question during extraction.
func NewPipeline(paths *envpath.Synchronizer, confirm Confirmer) *Pipeline {
	return &Pipeline{
		Paths:       paths,
		Runner:      ExecRunner{},
		Resolver:    PageResolver{},
		Fetcher:     HTTPFetcher{},
		Extractor:   ArchiveExtractor{Confirm: confirm},
		DownloadDir: os.TempDir(),
	}
}

// Ensure makes the tool locatable, walking its strategies in declared order
// until one verifiably succeeds. The initial check is the idempotency
// guarantee: when the tool already resolves, no strategy runs at all.
// Each strategy's action is followed by a PATH refresh and re-locate; an
// action that reports success but leaves the tool unresolved counts as a
// failed strategy.
func (p *Pipeline) Ensure(tool config.ToolSpec) Outcome {
	if location, ok := p.locate(tool); ok {
		logger.Debug("[DEBUG] %s found at %s\n", tool.Name, location)
		return Outcome{Status: AlreadyPresent, Strategy: -1}
	}

	for i, strat := range tool.Strategies {
		logger.Info("[INFO] Attempting to install %s via %s...\n", tool.Name, strat.Kind)
		if err := p.attempt(strat); err != nil {
			logger.Warn("[WARN] Failed to install %s via %s: %v\n", tool.Name, strat.Kind, err)
			continue
		}
		if location, ok := p.locate(tool); ok {
			logger.Debug("[DEBUG] %s now resolves at %s\n", tool.Name, location)
			return Outcome{Status: Installed, Strategy: i}
		}
		logger.Warn("[WARN] %s finished but %s is still not locatable, trying next method\n", strat.Kind, tool.Name)
	}

	return Outcome{Status: Failed, Strategy: -1}
}

// locate refreshes the search path from the persisted store and resolves
// the tool's executable names against the fresh snapshot. The snapshot is
// rebuilt on every call; it is never reused across an install action.
func (p *Pipeline) locate(tool config.ToolSpec) (string, bool) {
	searchPath := p.Paths.Refresh()
	for _, exe := range tool.Executables {
		if location, ok := envpath.Locate(exe, searchPath); ok {
			return location, true
		}
	}
	return "", false
}

// attempt executes one strategy's action, including its PATH append.
func (p *Pipeline) attempt(strat config.Strategy) error {
	switch strat.Kind {
	case config.KindPackageManager:
		if len(strat.Command) == 0 {
			return fmt.Errorf("package-manager strategy has no command")
		}
		if err := p.Runner.Run(strat.Command[0], strat.Command[1:]...); err != nil {
			return err
		}

	case config.KindClone:
		// The clone tool must have been ensured by an earlier spec; the
		// pipeline is invoked tool-by-tool in dependency order.
		vcs, ok := envpath.Locate(strat.CloneTool, p.Paths.Refresh())
		if !ok {
			return fmt.Errorf("clone tool %s: %w", strat.CloneTool, ErrNotFound)
		}
		logger.Info("[INFO] Cloning %s (%s) into %s...\n", strat.RepoURL, strat.Branch, strat.CloneDir)
		if err := p.Runner.Run(vcs, "clone", strat.RepoURL, "-b", strat.Branch, strat.CloneDir); err != nil {
			return err
		}

	case config.KindDownloadRun:
		installerPath, err := p.download(strat)
		if err != nil {
			return err
		}
		if err := p.Runner.Run(installerPath, strat.InstallerArgs...); err != nil {
			return err
		}

	case config.KindDownloadExtract:
		archivePath, err := p.download(strat)
		if err != nil {
			return err
		}
		if err := p.Extractor.Extract(archivePath, strat.TargetDir, strat.RenameTo); err != nil {
			return err
		}

	default:
		return fmt.Errorf("unknown strategy kind %q", strat.Kind)
	}

	return p.appendPath(strat)
}

// download resolves the strategy's current asset URL and fetches it into
// the download directory, reporting coarse progress at debug level.
func (p *Pipeline) download(strat config.Strategy) (string, error) {
	url, err := p.Resolver.ResolveDownloadURL(strat.PageURL, strat.Pattern, strat.URLPrefix)
	if err != nil {
		return "", err
	}

	name := path.Base(url)
	dest := filepath.Join(p.DownloadDir, name)
	logger.Info("[INFO] Downloading %s...\n", name)
	if err := p.Fetcher.Download(url, dest, downloadProgress(name)); err != nil {
		return "", err
	}
	return dest, nil
}

// downloadProgress logs every ten percent of a sized transfer. Rendering a
// real progress bar is left to the terminal layer; the fetcher only needs a
// callback.
func downloadProgress(name string) func(done, total int64) {
	lastDecile := int64(-1)
	return func(done, total int64) {
		if total <= 0 {
			return
		}
		decile := done * 10 / total
		if decile > lastDecile {
			lastDecile = decile
			logger.Debug("[DEBUG] %s: %d%% (%d/%d bytes)\n", name, decile*10, done, total)
		}
	}
}

// appendPath records the strategy's directory on the persisted PATH.
// A denied write (machine scope without elevation) is downgraded to a
// warning with manual-update guidance; the strategy still counts as
// successful if the tool resolves afterwards.
func (p *Pipeline) appendPath(strat config.Strategy) error {
	if strat.PathAppend == "" {
		return nil
	}

	scope := envpath.User
	if strings.EqualFold(strat.PathScope, config.ScopeMachine) {
		scope = envpath.Machine
	}

	logger.Info("[INFO] Attempting to update PATH...\n")
	if err := p.Paths.Append(scope, strat.PathAppend); err != nil {
		logger.Warn("[WARN] Failed to update PATH, may be caused by permission issues, please update PATH manually (add %s)\n", strat.PathAppend)
		return nil
	}
	logger.Info("[INFO] Updated PATH\n")
	return nil
}
