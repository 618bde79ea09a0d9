package installer

import (
	"os/exec"

	gerrors "gitup/internal/errors"
	"gitup/internal/logger"
)

// PackageManager pairs a package manager binary with the command that installs git through it.
type PackageManager struct {
	Binary         string
	InstallCommand string
}

// LinuxPackageManagers lists the managers probed on Linux, highest priority first.
// Adding a distribution is a matter of appending a row.
var LinuxPackageManagers = []PackageManager{
	{Binary: "apt-get", InstallCommand: "sudo apt-get update && sudo apt-get install git"},
	{Binary: "dnf", InstallCommand: "sudo dnf install git"},
	{Binary: "yum", InstallCommand: "sudo yum install git"},
	{Binary: "pacman", InstallCommand: "sudo pacman -Syu git"},
}

// Fixed advice for platforms that do not need probing.
const (
	MacOSInstallCommand   = "xcode-select --install"
	WindowsInstallCommand = "Visit https://git-scm.com/download/win and run the installer."
)

// Resolver recommends how to install git on the current machine.
type Resolver struct {
	// LookPath resolves a binary on PATH; exec.LookPath when nil.
	LookPath func(file string) (string, error)
	// Managers is the probe table for Linux; LinuxPackageManagers when nil.
	Managers []PackageManager
}

// NewResolver returns a Resolver probing the real PATH.
func NewResolver() *Resolver {
	return &Resolver{LookPath: exec.LookPath, Managers: LinuxPackageManagers}
}

// ResolveInstallAdvice returns the shell command a user on goos should run to install git.
// goos uses runtime.GOOS values ("linux", "darwin", "windows").
func (r *Resolver) ResolveInstallAdvice(goos string) (string, error) {
	switch goos {
	case "linux":
		lookPath := r.LookPath
		if lookPath == nil {
			lookPath = exec.LookPath
		}
		managers := r.Managers
		if managers == nil {
			managers = LinuxPackageManagers
		}

		for _, pm := range managers {
			// An absent manager is expected, keep probing
			if path, err := lookPath(pm.Binary); err == nil {
				logger.Debug("[DEBUG] Found package manager %s at %s\n", pm.Binary, path)
				return pm.InstallCommand, nil
			}
			logger.Debug("[DEBUG] Package manager %s not found on PATH\n", pm.Binary)
		}
		return "", gerrors.ErrPlatformDetectionFailed

	case "darwin":
		return MacOSInstallCommand, nil

	case "windows":
		return WindowsInstallCommand, nil

	default:
		return "", gerrors.ErrPlatformDetectionFailed
	}
}
