// =================================================================
//
// Work of the U.S. Department of Defense, Defense Digital Service.
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package remote

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsURL(t *testing.T) {
	assert.True(t, IsURL("http://example.com/a.txt"))
	assert.True(t, IsURL("HTTPS://example.com/a.txt"))
	assert.True(t, IsURL("s3://bucket/a.txt"))
	assert.False(t, IsURL("/tmp/a.txt"))
	assert.False(t, IsURL("ftp://example.com/a.txt"))
	assert.False(t, IsURL("http.txt"))
}

func TestBasename(t *testing.T) {
	name, err := Basename("https://example.com/files/archive.tar.gz?token=abc")
	require.NoError(t, err)
	assert.Equal(t, "archive.tar.gz", name)

	name, err = Basename("s3://bucket/a/b.txt")
	require.NoError(t, err)
	assert.Equal(t, "b.txt", name)

	name, err = Basename("https://example.com")
	require.NoError(t, err)
	assert.Equal(t, DefaultBasename, name)

	name, err = Basename("https://example.com/")
	require.NoError(t, err)
	assert.Equal(t, DefaultBasename, name)

	_, err = Basename("http://[::1")
	assert.Error(t, err)
}
