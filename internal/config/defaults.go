package config

import (
	"os"
	"path/filepath"
)

// DefaultTools returns the built-in tool table in dependency order:
// Git first (needed to fetch the SDK), the Flutter SDK second, and the
// Android command line tools last, gated by user confirmation.
//
// The order is load-bearing: the clone strategy for the Flutter SDK
// requires Git to already be locatable, so its spec must come after Git's.
func DefaultTools() []ToolSpec {
	sdkRoot := filepath.Join(os.Getenv("LOCALAPPDATA"), "Android", "Sdk")
	cmdlineTools := filepath.Join(sdkRoot, "cmdline-tools")

	return []ToolSpec{
		{
			Name:        "Git",
			Executables: []string{"git"},
			Required:    true,
			ManualURL:   "https://git-scm.com/download/win",
			Strategies: []Strategy{
				{
					Kind:    KindPackageManager,
					Command: []string{"winget", "install", "--id", "Git.Git", "-e", "--source", "winget"},
				},
				{
					Kind:      KindDownloadRun,
					PageURL:   "https://github.com/git-for-windows/git/releases/latest",
					Pattern:   `/git-for-windows/git/releases/download/(\S*)64-bit\.exe`,
					URLPrefix: "https://github.com",
				},
			},
		},
		{
			Name:        "Flutter SDK",
			Executables: []string{"flutter"},
			Required:    true,
			ManualURL:   "https://docs.flutter.dev/get-started/install/windows",
			Strategies: []Strategy{
				{
					Kind:       KindClone,
					CloneTool:  "git",
					RepoURL:    "https://github.com/flutter/flutter.git",
					Branch:     "stable",
					CloneDir:   `C:\src`,
					PathAppend: `C:\src\flutter\bin`,
					PathScope:  ScopeMachine,
				},
			},
		},
		{
			Name:        "Android command line tools",
			Executables: []string{"sdkmanager.bat"},
			ConfirmPrompt: "Do you want to install Android SDK, Android SDK Command-line Tools, and" +
				" Android SDK Build-Tools (only install if you do not already have it installed;" +
				" if unsure, do not install and opt for manual installation instead)?",
			ManualURL: "https://docs.flutter.dev/get-started/install/windows#android-setup",
			Strategies: []Strategy{
				{
					Kind:       KindDownloadExtract,
					PageURL:    "https://developer.android.com/studio",
					Pattern:    `commandlinetools-win-(\S*)_latest\.zip`,
					URLPrefix:  "https://dl.google.com/android/repository/",
					TargetDir:  cmdlineTools,
					RenameTo:   "latest",
					PathAppend: filepath.Join(cmdlineTools, "latest", "bin"),
					PathScope:  ScopeUser,
				},
			},
		},
	}
}
