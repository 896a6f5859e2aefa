package mcard

// KnownMimeTypes is the fixed catalog of MIME types a file card may
// declare, kept sorted for readability.
var KnownMimeTypes = []string{
	"application/javascript",
	"application/json",
	"application/msword",
	"application/octet-stream",
	"application/ogg",
	"application/pdf",
	"application/postscript",
	"application/rtf",
	"application/vnd.ms-excel",
	"application/vnd.ms-powerpoint",
	"application/vnd.openxmlformats-officedocument.presentationml.presentation",
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	"application/x-7z-compressed",
	"application/x-gtar",
	"application/x-tar",
	"application/xml",
	"application/zip",
	"audio/basic",
	"audio/mpeg",
	"audio/ogg",
	"audio/x-aiff",
	"audio/x-wav",
	"image/bmp",
	"image/gif",
	"image/jpeg",
	"image/png",
	"image/svg+xml",
	"image/tiff",
	"image/webp",
	"image/x-icon",
	"message/rfc822",
	"text/css",
	"text/csv",
	"text/html",
	"text/markdown",
	"text/plain",
	"text/richtext",
	"text/tab-separated-values",
	"text/xml",
	"video/mp4",
	"video/mpeg",
	"video/ogg",
	"video/quicktime",
	"video/webm",
	"video/x-msvideo",
}

var knownMimeTypes = func() map[string]struct{} {
	m := make(map[string]struct{}, len(KnownMimeTypes))
	for _, mt := range KnownMimeTypes {
		m[mt] = struct{}{}
	}
	return m
}()

func IsKnownMimeType(mimeType string) bool {
	_, ok := knownMimeTypes[mimeType]
	return ok
}
