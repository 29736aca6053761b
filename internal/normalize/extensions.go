package normalize

import (
	"path/filepath"
	"strings"
)

// extSynonyms maps known equivalent extensions onto one canonical spelling.
var extSynonyms = map[string]string{
	".jpeg": ".jpg",
	".htm":  ".html",
	".yml":  ".yaml",
	".tif":  ".tiff",
	".mpeg": ".mpg",
}

// compoundExts are multi-part extensions kept whole when splitting a name.
var compoundExts = []string{".tar.gz", ".tar.bz2", ".tar.xz", ".tar.zst"}

// SplitName splits a filename into stem and extension. Compound archive
// extensions stay attached to the extension, and dotfiles without a further
// extension (".gitignore") are all stem.
func SplitName(name string) (stem, ext string) {
	lower := strings.ToLower(name)
	for _, c := range compoundExts {
		if strings.HasSuffix(lower, c) && len(name) > len(c) {
			return name[:len(name)-len(c)], name[len(name)-len(c):]
		}
	}
	ext = filepath.Ext(name)
	if ext == name {
		// The whole name is a dotfile, not an extension.
		return name, ""
	}
	return strings.TrimSuffix(name, ext), ext
}

// Ext lower-cases an extension and maps known synonyms to their canonical
// form (".JPEG" becomes ".jpg").
func Ext(ext string) string {
	ext = strings.ToLower(ext)
	if canon, ok := extSynonyms[ext]; ok {
		return canon
	}
	return ext
}
