package mime

import (
	"github.com/indigo-web/utils/strcomp"
)

// Ext returns the extension of the last path element without the leading dot. Dotfiles
// like .gitignore and names without a dot have no extension.
func Ext(filename string) string {
	for i := len(filename) - 1; i > 0; i-- {
		switch filename[i] {
		case '.':
			if filename[i-1] == '/' || filename[i-1] == '\\' {
				return ""
			}

			return filename[i+1:]
		case '/', '\\':
			return ""
		}
	}

	return ""
}

// Resolve returns the MIME of the file by its extension, regardless of its case. Unknown
// and missing extensions resolve to Fallback.
func Resolve(filename string) MIME {
	ext := Ext(filename)
	if len(ext) == 0 {
		return Fallback
	}

	if mime, found := Extension[ext]; found {
		return mime
	}

	for known, mime := range Extension {
		if strcomp.EqualFold(known, ext) {
			return mime
		}
	}

	return Fallback
}

// IsHTML reports whether the file has an html or htm extension.
func IsHTML(filename string) bool {
	ext := Ext(filename)
	return strcomp.EqualFold(ext, "html") || strcomp.EqualFold(ext, "htm")
}
