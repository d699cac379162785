// Converts the text elements of an svgdom tree into path
// elements, by shaping their content with go-text/typesetting and
// extracting the glyph outlines of the selected fonts.
package svgtext

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/go-text/typesetting/fontscan"
)

// Database is a collection of fonts usable for text conversion.
type Database struct {
	fontMap *fontscan.FontMap
}

// NewDatabase returns an empty font database. Load fonts with
// LoadSystemFonts, LoadFontData or LoadFontsDir before converting.
func NewDatabase() *Database {
	return &Database{fontMap: fontscan.NewFontMap(nil)}
}

// LoadSystemFonts indexes the fonts installed on the system,
// caching the index in the user cache directory.
func (db *Database) LoadSystemFonts() error {
	dir, err := os.UserCacheDir()
	if err != nil {
		dir = os.TempDir()
	}
	return db.fontMap.UseSystemFonts(dir)
}

// LoadFontData registers an in-memory font file (TTF or OTF).
func (db *Database) LoadFontData(data []byte) error {
	return db.fontMap.AddFont(bytes.NewReader(data), "memory", "")
}

// LoadFontsDir registers every font file found under `dir`,
// recursively. Files that cannot be parsed as fonts are skipped.
func (db *Database) LoadFontsDir(dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		fp, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("svgtext: loading %s: %w", path, err)
		}
		defer fp.Close()
		// not every file in a fonts dir is a font
		_ = db.fontMap.AddFont(fp, path, "")
		return nil
	})
}
