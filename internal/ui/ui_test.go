package ui

import (
	"bytes"
	"errors"
	"testing"

	"gitup/internal/config"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	// Plain text keeps assertions readable
	color.NoColor = true
}

func TestWriteJSON_StatusEnvelope(t *testing.T) {
	profiles := config.NewProfiles()
	profiles.CurrentProfile = config.String("work")
	id := config.Identity{Name: config.String("Jane Doe"), Email: config.String("jane@corp.example")}

	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, OK("", NewStatusData(id, profiles))))
	assert.JSONEq(t, `{
		"status": "ok",
		"data": {
			"isGitInstalled": true,
			"config": {"name": "Jane Doe", "email": "jane@corp.example"},
			"activeProfile": "work"
		}
	}`, buf.String())
}

func TestWriteJSON_NoActiveProfileIsNull(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, OK("", NewStatusData(config.Identity{}, config.NewProfiles()))))
	assert.JSONEq(t, `{"status":"ok","data":{"isGitInstalled":true,"config":{},"activeProfile":null}}`, buf.String())
}

func TestWriteJSON_Failure(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, Failure("Git is not installed.", NotInstalledData{IsGitInstalled: false})))
	assert.JSONEq(t, `{"status":"error","message":"Git is not installed.","data":{"isGitInstalled":false}}`, buf.String())

	buf.Reset()
	require.NoError(t, WriteJSON(&buf, Failure("profile not found: 'x'", nil)))
	assert.JSONEq(t, `{"status":"error","message":"profile not found: 'x'"}`, buf.String())
}

func TestPrintStatus(t *testing.T) {
	profiles := config.NewProfiles()
	profiles.CurrentProfile = config.String("work")
	id := config.Identity{Name: config.String("Jane Doe"), SigningKey: config.String("ABC123")}

	var buf bytes.Buffer
	PrintStatus(&buf, id, profiles)
	out := buf.String()

	assert.Contains(t, out, "Git Configuration Status")
	assert.Contains(t, out, "Jane Doe")
	assert.Regexp(t, `Email\s+: Not Set`, out)
	assert.Contains(t, out, "ABC123")
	assert.Contains(t, out, "work (active)")
}

func TestPrintStatus_HidesAbsentKeyAndProfile(t *testing.T) {
	var buf bytes.Buffer
	PrintStatus(&buf, config.Identity{}, config.NewProfiles())
	assert.NotContains(t, buf.String(), "Signing Key")
	assert.NotContains(t, buf.String(), "Profile")
}

func TestPrintProfiles(t *testing.T) {
	var buf bytes.Buffer
	PrintProfiles(&buf, config.NewProfiles())
	assert.Contains(t, buf.String(), "No profiles saved.")

	profiles := config.NewProfiles()
	profiles.Profiles["work"] = config.Identity{}
	profiles.Profiles["personal"] = config.Identity{}
	profiles.CurrentProfile = config.String("work")

	buf.Reset()
	PrintProfiles(&buf, profiles)
	assert.Equal(t, "Saved Profiles\n  - personal\n  - work (active)\n", buf.String())
}

func TestPrintActiveProfile(t *testing.T) {
	var buf bytes.Buffer
	PrintActiveProfile(&buf, config.NewProfiles())
	assert.Equal(t, "No profile is currently active.\n", buf.String())

	profiles := config.NewProfiles()
	profiles.CurrentProfile = config.String("work")
	buf.Reset()
	PrintActiveProfile(&buf, profiles)
	assert.Equal(t, "Active profile: work\n", buf.String())
}

func TestPrintNotInstalled(t *testing.T) {
	var buf bytes.Buffer
	PrintNotInstalled(&buf, "sudo dnf install git")
	assert.Contains(t, buf.String(), "Git is not installed.")
	assert.Contains(t, buf.String(), "sudo dnf install git")

	buf.Reset()
	PrintNotInstalled(&buf, "")
	assert.Equal(t, "Git is not installed.\n", buf.String())
}

func TestPrintError(t *testing.T) {
	var buf bytes.Buffer
	PrintError(&buf, errors.New("boom"))
	assert.Equal(t, "Error: boom\n", buf.String())
}
