package mime

// Extension maps lowercase file extensions (without the leading dot) to their MIME.
var Extension = map[string]MIME{
	"html": HTML,
	"htm":  HTML,
	"css":  CSS,
	"scss": CSS,
	"js":   JS,
	"es6":  JS,
	"mjs":  JS,
	"pdf":  PDF,
	"zip":  ZIP,
	"mp3":  MP3,
	"ico":  ICO,
	"png":  PNG,
	"bmp":  BMP,
	"gif":  GIF,
	"jpg":  JPEG,
	"jpeg": JPEG,
	"txt":  Plain,
	"text": Plain,
	"md":   Plain,
	"json": JSON,
	"svg":  SVG,
	"wasm": WASM,
	"webp": WEBP,
	"xml":  XML,
}
