package state

import (
	"errors"
	"testing"

	"gitup/internal/config"
	gerrors "gitup/internal/errors"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPath = "/home/jane/.config/gitup/config.json"

// recordingWriter captures applied identities and can be told to fail.
type recordingWriter struct {
	applied []config.Identity
	err     error
}

func (w *recordingWriter) WriteIdentity(id config.Identity) error {
	if w.err != nil {
		return w.err
	}
	w.applied = append(w.applied, id)
	return nil
}

func identity(name, email, key string) config.Identity {
	id := config.Identity{Name: config.String(name), Email: config.String(email)}
	if key != "" {
		id.SigningKey = config.String(key)
	}
	return id
}

func TestLoad_MissingFileIsEmpty(t *testing.T) {
	s := NewStore(afero.NewMemMapFs(), testPath)

	profiles, err := s.Load()
	require.NoError(t, err)
	assert.NotNil(t, profiles.Profiles)
	assert.Empty(t, profiles.Profiles)
	assert.Nil(t, profiles.CurrentProfile)
}

func TestLoad_MalformedData(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, testPath, []byte("{not json"), 0644))

	_, err := NewStore(fs, testPath).Load()
	assert.ErrorIs(t, err, gerrors.ErrMalformedData)

	// The broken file is left in place
	data, readErr := afero.ReadFile(fs, testPath)
	require.NoError(t, readErr)
	assert.Equal(t, "{not json", string(data))
}

func TestLoad_NullProfiles(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, testPath, []byte(`{"profiles":null}`), 0644))

	profiles, err := NewStore(fs, testPath).Load()
	require.NoError(t, err)
	assert.NotNil(t, profiles.Profiles)
}

func TestLoad_ReadsDocument(t *testing.T) {
	fs := afero.NewMemMapFs()
	doc := `{
  "profiles": {
    "work": {"name": "Jane Doe", "email": "jane@corp.example", "signingKey": "ABC123"},
    "personal": {"name": "Jane", "email": "jane@example.com"}
  },
  "currentProfile": "work"
}`
	require.NoError(t, afero.WriteFile(fs, testPath, []byte(doc), 0644))

	profiles, err := NewStore(fs, testPath).Load()
	require.NoError(t, err)
	assert.Equal(t, identity("Jane Doe", "jane@corp.example", "ABC123"), profiles.Profiles["work"])
	assert.Equal(t, identity("Jane", "jane@example.com", ""), profiles.Profiles["personal"])
	require.NotNil(t, profiles.CurrentProfile)
	assert.Equal(t, "work", *profiles.CurrentProfile)
}

func TestSaveProfile_CreatesFileAndRoundTrips(t *testing.T) {
	fs := afero.NewMemMapFs()
	s := NewStore(fs, testPath)

	require.NoError(t, s.SaveProfile("work", identity("Jane Doe", "jane@corp.example", "ABC123")))

	exists, err := afero.Exists(fs, testPath)
	require.NoError(t, err)
	assert.True(t, exists)

	profiles, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, identity("Jane Doe", "jane@corp.example", "ABC123"), profiles.Profiles["work"])
}

func TestSaveProfile_NormalizesEmptyKey(t *testing.T) {
	fs := afero.NewMemMapFs()
	s := NewStore(fs, testPath)

	id := identity("Jane", "jane@example.com", "")
	id.SigningKey = config.String("")
	require.NoError(t, s.SaveProfile("personal", id))

	data, err := afero.ReadFile(fs, testPath)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "signingKey")
}

func TestSaveProfile_Overwrites(t *testing.T) {
	s := NewStore(afero.NewMemMapFs(), testPath)

	require.NoError(t, s.SaveProfile("work", identity("Old", "old@example.com", "")))
	require.NoError(t, s.SaveProfile("work", identity("New", "new@example.com", "")))

	profiles, err := s.Load()
	require.NoError(t, err)
	assert.Len(t, profiles.Profiles, 1)
	assert.Equal(t, "New", *profiles.Profiles["work"].Name)
}

func TestSave_WriteFailure(t *testing.T) {
	s := NewStore(afero.NewReadOnlyFs(afero.NewMemMapFs()), testPath)

	err := s.SaveProfile("work", identity("Jane", "jane@example.com", ""))
	require.Error(t, err)

	var storageErr *gerrors.StorageError
	require.True(t, errors.As(err, &storageErr))
	assert.Equal(t, "write", storageErr.Op)
	assert.Equal(t, testPath, storageErr.Path)
}

func TestUseProfile_AppliesAndMarksCurrent(t *testing.T) {
	s := NewStore(afero.NewMemMapFs(), testPath)
	work := identity("Jane Doe", "jane@corp.example", "ABC123")
	require.NoError(t, s.SaveProfile("work", work))

	writer := &recordingWriter{}
	got, err := s.UseProfile("work", writer)
	require.NoError(t, err)
	assert.Equal(t, work, got)
	assert.Equal(t, []config.Identity{work}, writer.applied)

	profiles, err := s.Load()
	require.NoError(t, err)
	assert.True(t, profiles.IsActive("work"))
}

func TestUseProfile_NotFoundKeepsPointer(t *testing.T) {
	s := NewStore(afero.NewMemMapFs(), testPath)
	require.NoError(t, s.SaveProfile("work", identity("Jane", "jane@corp.example", "")))
	_, err := s.UseProfile("work", &recordingWriter{})
	require.NoError(t, err)

	writer := &recordingWriter{}
	_, err = s.UseProfile("nonexistent", writer)
	assert.ErrorIs(t, err, gerrors.ErrProfileNotFound)
	assert.Contains(t, err.Error(), "'nonexistent'")
	assert.Empty(t, writer.applied)

	profiles, err := s.Load()
	require.NoError(t, err)
	assert.True(t, profiles.IsActive("work"))
}

func TestUseProfile_WriteFailureKeepsPointer(t *testing.T) {
	s := NewStore(afero.NewMemMapFs(), testPath)
	require.NoError(t, s.SaveProfile("work", identity("Jane", "jane@corp.example", "")))
	require.NoError(t, s.SaveProfile("personal", identity("Jane", "jane@example.com", "")))
	_, err := s.UseProfile("personal", &recordingWriter{})
	require.NoError(t, err)

	boom := &gerrors.CommandFailedError{Command: "git config --global user.name Jane", Code: 255}
	_, err = s.UseProfile("work", &recordingWriter{err: boom})
	require.Error(t, err)

	var failed *gerrors.CommandFailedError
	assert.True(t, errors.As(err, &failed))

	profiles, err := s.Load()
	require.NoError(t, err)
	assert.True(t, profiles.IsActive("personal"))
}

func TestDeleteProfile_ActiveClearsPointer(t *testing.T) {
	s := NewStore(afero.NewMemMapFs(), testPath)
	require.NoError(t, s.SaveProfile("work", identity("Jane", "jane@corp.example", "")))
	_, err := s.UseProfile("work", &recordingWriter{})
	require.NoError(t, err)

	require.NoError(t, s.DeleteProfile("work"))

	profiles, err := s.Load()
	require.NoError(t, err)
	assert.NotContains(t, profiles.Profiles, "work")
	assert.Nil(t, profiles.CurrentProfile)
}

func TestDeleteProfile_OtherKeepsPointer(t *testing.T) {
	s := NewStore(afero.NewMemMapFs(), testPath)
	require.NoError(t, s.SaveProfile("work", identity("Jane", "jane@corp.example", "")))
	require.NoError(t, s.SaveProfile("personal", identity("Jane", "jane@example.com", "")))
	_, err := s.UseProfile("work", &recordingWriter{})
	require.NoError(t, err)

	require.NoError(t, s.DeleteProfile("personal"))

	profiles, err := s.Load()
	require.NoError(t, err)
	assert.True(t, profiles.IsActive("work"))
	assert.Len(t, profiles.Profiles, 1)
}

func TestDeleteProfile_NotFound(t *testing.T) {
	s := NewStore(afero.NewMemMapFs(), testPath)
	assert.ErrorIs(t, s.DeleteProfile("ghost"), gerrors.ErrProfileNotFound)
}

func TestProfileNames_Sorted(t *testing.T) {
	s := NewStore(afero.NewMemMapFs(), testPath)
	for _, name := range []string{"work", "client", "personal"} {
		require.NoError(t, s.SaveProfile(name, identity("Jane", "jane@example.com", "")))
	}

	names, err := s.ProfileNames()
	require.NoError(t, err)
	assert.Equal(t, []string{"client", "personal", "work"}, names)
}
