package models

// ArtifactKind identifies one of the generated version files
type ArtifactKind string

const (
	// ArtifactTeX is the LaTeX macro file used by the user manual
	ArtifactTeX ArtifactKind = "tex"
	// ArtifactR is the R source file used by the R libraries
	ArtifactR ArtifactKind = "r"
	// ArtifactHeader is the C/C++ preprocessor header compiled into the binary
	ArtifactHeader ArtifactKind = "header"
)

// ArtifactKinds lists every kind in the order files are written
var ArtifactKinds = []ArtifactKind{ArtifactTeX, ArtifactR, ArtifactHeader}

// Artifact is a rendered version file and where it belongs
type Artifact struct {
	// Kind of file
	Kind ArtifactKind
	// Path the content is written to
	Path string
	// Content is the full rendered file
	Content string
}

// NewArtifact creates a new Artifact
func NewArtifact(kind ArtifactKind, path, content string) Artifact {
	return Artifact{
		Kind:    kind,
		Path:    path,
		Content: content,
	}
}

// Label returns a human readable name for the kind
func (k ArtifactKind) Label() string {
	switch k {
	case ArtifactTeX:
		return "documentation"
	case ArtifactR:
		return "R library"
	case ArtifactHeader:
		return "C++ header"
	default:
		return string(k)
	}
}
