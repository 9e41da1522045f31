package main

import (
	"flutter-bootstrap/cmd" // Import the cmd package which contains the CLI commands and execution logic
)

// main is the program entry point.
// It delegates to cmd.Execute() which handles command line argument parsing and execution.
//
// This design cleanly separates the CLI interface (cmd package) from main,
// allowing easier testing, extension, and reuse of the CLI commands.
//
// The flutter-bootstrap project is a Windows installer for the Flutter development toolchain that:
//   - Verifies presence of Git, the Flutter SDK, and (optionally) the Android command-line tools
//   - Walks an ordered fallback chain of installation strategies for each missing tool,
//     preferring the package manager (winget) and falling back to manual download-and-run
//   - Re-reads the persisted PATH value from the Windows registry (machine scope concatenated
//     with user scope) after every install, so a just-installed tool is visible to later steps
//     within the same run without a process restart
//   - Appends new tool directories to the persisted PATH with append-with-dedup semantics,
//     downgrading a denied machine-scope write to a warning with manual-update guidance
//   - Keeps no state between runs: every run re-detects each tool from scratch, which is what
//     makes a second run a no-op for tools that are already satisfied
//
// Error handling strategy:
//   - A failed strategy is logged as a warning and the next strategy in the chain is tried;
//     there is no automatic retry of an identical strategy
//   - A required tool whose whole chain is exhausted terminates the run with exit status 1
//     and a pointer to the tool's manual installation page
//   - An optional tool failing only aborts that tool's own sub-flow
//
// Integration points:
//   - Invokes winget, the Git installer executable, and git clone as foreground processes
//   - Scrapes release/download pages for current installer asset URLs via regular expressions,
//     isolated behind a resolver so a changed page layout is a pattern update, not a redesign
//   - Reads and writes the Path values under HKLM Session Manager\Environment and
//     HKCU\Environment through the Windows registry API
func main() {
	cmd.Execute()
}
