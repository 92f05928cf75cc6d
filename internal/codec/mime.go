package codec

import (
	"mime"
	"sort"
	"strings"
)

// supportedTypes lists the upload content types the service accepts,
// matching the formats the registered decoders can handle. "image/jpg" is
// not a registered IANA type but appears in the wild, so it is tolerated
// as an alias for "image/jpeg".
var supportedTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/bmp":  true,
	"image/tiff": true,
	"image/webp": true,
}

// SupportedType reports whether an upload's declared Content-Type is
// acceptable. Parameters (e.g. "; charset=...") are ignored; matching is
// case-insensitive.
func SupportedType(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return supportedTypes[strings.ToLower(mediaType)]
}

// SupportedTypeList returns the accepted content types as a sorted,
// comma-separated string for use in error messages.
func SupportedTypeList() string {
	types := make([]string, 0, len(supportedTypes))
	for t := range supportedTypes {
		types = append(types, t)
	}
	sort.Strings(types)
	return strings.Join(types, ", ")
}
