package media

import "github.com/red4golf/historical-places-explorer/internal/platform/constants"

// allowedMimeTypes is the per-kind MIME allow-list. A declared type outside
// the list for its kind is rejected before anything touches disk; the byte
// content is never sniffed.
var allowedMimeTypes = map[string]map[string]bool{
	constants.MediaKindImage: {
		"image/jpeg": true,
		"image/png":  true,
		"image/gif":  true,
	},
	constants.MediaKindDocument: {
		"application/pdf":    true,
		"application/msword": true,
		"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
		"text/plain":    true,
		"text/markdown": true,
	},
}

// kindProbeOrder is the fixed order deletion probes the kind partitions.
// Older records reference assets by bare filename without the kind, so
// deletion has to search every partition.
var kindProbeOrder = []string{
	constants.MediaKindImage,
	constants.MediaKindDocument,
}

// Upload describes a stored media asset as returned to the uploader.
type Upload struct {
	// Filename is the generated on-disk name.
	Filename string `json:"filename"`
	// Path is the web path the asset will be served from.
	Path string `json:"path"`
	// Caption echoes the caption the uploader attached, if any.
	Caption string `json:"caption,omitempty"`
}
