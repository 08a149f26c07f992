package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withVersion(t *testing.T, v string) {
	t.Helper()
	prev := Version
	Version = v
	t.Cleanup(func() { Version = prev })
}

func TestString(t *testing.T) {
	withVersion(t, "dev")
	assert.Equal(t, "goaround-icons dev (unknown, unknown) [development build]", String())

	withVersion(t, "v1.2.3")
	assert.Equal(t, "goaround-icons v1.2.3 (unknown, unknown)", String())
}

func TestSemver(t *testing.T) {
	withVersion(t, "v1.4.0-rc.1")
	v, err := Semver()
	require.NoError(t, err)
	assert.Equal(t, uint64(1), v.Major())
	assert.Equal(t, "rc.1", v.Prerelease())
	assert.False(t, IsRelease())

	withVersion(t, "2.0.1")
	assert.True(t, IsRelease())

	withVersion(t, "dev")
	_, err = Semver()
	assert.Error(t, err)
	assert.False(t, IsRelease())
}
