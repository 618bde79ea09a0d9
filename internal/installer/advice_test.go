package installer

import (
	"errors"
	"testing"

	gerrors "gitup/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakePath returns a LookPath that finds only the given binaries.
func fakePath(found ...string) func(string) (string, error) {
	return func(file string) (string, error) {
		for _, f := range found {
			if f == file {
				return "/usr/bin/" + file, nil
			}
		}
		return "", errors.New("executable file not found in $PATH")
	}
}

func TestResolveInstallAdvice(t *testing.T) {
	tests := []struct {
		name    string
		goos    string
		found   []string
		want    string
		wantErr error
	}{
		{name: "debian", goos: "linux", found: []string{"apt-get"}, want: "sudo apt-get update && sudo apt-get install git"},
		{name: "fedora", goos: "linux", found: []string{"dnf"}, want: "sudo dnf install git"},
		{name: "centos", goos: "linux", found: []string{"yum"}, want: "sudo yum install git"},
		{name: "arch", goos: "linux", found: []string{"pacman"}, want: "sudo pacman -Syu git"},
		{name: "dnf wins over yum", goos: "linux", found: []string{"yum", "dnf"}, want: "sudo dnf install git"},
		{name: "apt-get wins over everything", goos: "linux", found: []string{"pacman", "yum", "dnf", "apt-get"}, want: "sudo apt-get update && sudo apt-get install git"},
		{name: "no manager", goos: "linux", wantErr: gerrors.ErrPlatformDetectionFailed},
		{name: "macos", goos: "darwin", want: MacOSInstallCommand},
		{name: "windows", goos: "windows", want: WindowsInstallCommand},
		{name: "unknown os", goos: "plan9", found: []string{"apt-get"}, wantErr: gerrors.ErrPlatformDetectionFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &Resolver{LookPath: fakePath(tt.found...)}
			got, err := r.ResolveInstallAdvice(tt.goos)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveInstallAdvice_CustomTable(t *testing.T) {
	r := &Resolver{
		LookPath: fakePath("zypper"),
		Managers: []PackageManager{{Binary: "zypper", InstallCommand: "sudo zypper install git"}},
	}

	got, err := r.ResolveInstallAdvice("linux")
	require.NoError(t, err)
	assert.Equal(t, "sudo zypper install git", got)
}

func TestResolveInstallAdvice_ProbesInOrder(t *testing.T) {
	var probed []string
	r := &Resolver{LookPath: func(file string) (string, error) {
		probed = append(probed, file)
		return "", errors.New("not found")
	}}

	_, err := r.ResolveInstallAdvice("linux")
	assert.ErrorIs(t, err, gerrors.ErrPlatformDetectionFailed)
	assert.Equal(t, []string{"apt-get", "dnf", "yum", "pacman"}, probed)
}
