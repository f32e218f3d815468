package output

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/kiln/pkg/logging"
	"github.com/arthur-debert/kiln/pkg/output/styles"
)

// UserStylesFile is where a user may replace the built-in styles
func UserStylesFile() string {
	return filepath.Join(xdg.ConfigHome, logging.AppName, "styles.yaml")
}

// LoadUserStyles replaces the built-in styles with UserStylesFile when it
// exists. A missing file is not an error.
func LoadUserStyles() error {
	path := UserStylesFile()
	if _, err := os.Stat(path); err != nil {
		return nil
	}
	return styles.LoadStyles(path)
}
