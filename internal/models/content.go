package models

import "strings"

// ContentType is the normalized tag for the kind of study material a plan covers.
type ContentType string

const (
	ContentTypeBook    ContentType = "book"
	ContentTypeLecture ContentType = "lecture"
	ContentTypeCustom  ContentType = "custom"
)

var contentTypeAliases = map[string]ContentType{
	"book":     ContentTypeBook,
	"textbook": ContentTypeBook,
	"lecture":  ContentTypeLecture,
	"lec":      ContentTypeLecture,
	"video":    ContentTypeLecture,
	"course":   ContentTypeLecture,
	"custom":   ContentTypeCustom,
}

// NormalizeContentType maps a declared content type onto the closed tag set.
// An empty declaration defaults to book; unrecognized values become custom.
func NormalizeContentType(declared string) ContentType {
	key := strings.ToLower(strings.TrimSpace(declared))
	if key == "" {
		return ContentTypeBook
	}
	if ct, ok := contentTypeAliases[key]; ok {
		return ct
	}
	return ContentTypeCustom
}
