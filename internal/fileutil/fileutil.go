// Package fileutil holds file permission modes shared by wordcase tools.
package fileutil

import "os"

// ReadableByAll is the file permission mode for generated source code
// files intended to be read by build tools and other users.
const ReadableByAll os.FileMode = 0o644
