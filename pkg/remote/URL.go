// =================================================================
//
// Work of the U.S. Department of Defense, Defense Digital Service.
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package remote

import (
	"fmt"
	"net/url"
	"path"
	"strings"
)

const (
	DefaultBasename = "index.html"
)

// Schemes are the url schemes that can be fetched.
var Schemes = []string{"http", "https", "s3"}

// IsURL returns true if the source starts with one of the supported schemes.
func IsURL(source string) bool {
	for _, scheme := range Schemes {
		if strings.HasPrefix(strings.ToLower(source), scheme+"://") {
			return true
		}
	}
	return false
}

// Basename returns the final element of the url path.
// If the path does not name a file, then returns DefaultBasename.
func Basename(source string) (string, error) {
	u, err := url.Parse(source)
	if err != nil {
		return "", fmt.Errorf("error parsing url %q: %w", source, err)
	}
	name := path.Base(u.Path)
	if name == "" || name == "." || name == "/" {
		return DefaultBasename, nil
	}
	return name, nil
}
