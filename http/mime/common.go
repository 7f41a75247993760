package mime

type MIME = string

const (
	OctetStream MIME = "application/octet-stream"
	Plain       MIME = "text/plain"
	HTML        MIME = "text/html"
	CSS         MIME = "text/css"
	JS          MIME = "text/javascript"
	XML         MIME = "text/xml"
	JSON        MIME = "application/json"
	PDF         MIME = "application/pdf"
	ZIP         MIME = "application/zip"
	MP3         MIME = "application/mp3"
	WASM        MIME = "application/wasm"
	ICO         MIME = "image/x-icon"
	PNG         MIME = "image/png"
	BMP         MIME = "image/bmp"
	GIF         MIME = "image/gif"
	JPEG        MIME = "image/jpeg"
	SVG         MIME = "image/svg+xml"
	WEBP        MIME = "image/webp"
)

// Fallback is returned for files whose extension is unknown or absent.
const Fallback = OctetStream
