package domain

import (
	"path"
	"strings"
	"time"
)

// FileRecord is one scanned file: where it lives and when it last changed.
type FileRecord struct {
	Path       string // Relative to the scan root, slash separated
	Absolute   string // Full filesystem path
	ModifiedAt time.Time
}

// Name returns the base name of the file
func (r FileRecord) Name() string {
	return path.Base(r.Path)
}

// Kind narrows a scan to documentation or code files
type Kind int

const (
	KindAll Kind = iota
	KindDocs
	KindCode
)

func (k Kind) String() string {
	switch k {
	case KindDocs:
		return "docs"
	case KindCode:
		return "code"
	default:
		return "all"
	}
}

// ParseKind converts a flag value into a Kind. Unknown values report ok=false.
func ParseKind(s string) (Kind, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "all":
		return KindAll, true
	case "docs":
		return KindDocs, true
	case "code":
		return KindCode, true
	default:
		return KindAll, false
	}
}

// Classify reports whether a relative path counts as docs or code.
// Everything under a top-level "docs" directory is docs, as is everything
// when the root itself is named "docs".
func Classify(rootName, relPath string) Kind {
	if rootName == "docs" {
		return KindDocs
	}
	first, _, _ := strings.Cut(relPath, "/")
	if first == "docs" {
		return KindDocs
	}
	return KindCode
}

// Matches reports whether a record with the given root belongs to kind k
func (k Kind) Matches(rootName, relPath string) bool {
	if k == KindAll {
		return true
	}
	return Classify(rootName, relPath) == k
}
