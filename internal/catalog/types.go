package catalog

import "errors"

const (
	// SkillSuffix marks a directory as a skill container.
	SkillSuffix = "-skill"
	// DocumentName is the metadata-bearing document inside a container.
	DocumentName = "SKILL.md"

	defaultDescription = "No description"
	defaultVersion     = "1.0"
)

// ErrNotFound is returned when no skill matches a requested name.
var ErrNotFound = errors.New("skill not found")

// Header holds the key/value fields of a document's frontmatter block.
type Header map[string]string

// Entry is one discoverable skill.
type Entry struct {
	DirectoryName string `json:"directory" yaml:"directory"`
	DocumentPath  string `json:"path" yaml:"path"`
	DisplayName   string `json:"name" yaml:"name"`
	Description   string `json:"description" yaml:"description"`
	Version       string `json:"version" yaml:"version"`
	Activation    string `json:"activation,omitempty" yaml:"activation,omitempty"`
}

// newEntry applies the header defaulting rules.
func newEntry(dirName, docPath string, h Header) Entry {
	e := Entry{
		DirectoryName: dirName,
		DocumentPath:  docPath,
		DisplayName:   dirName,
		Description:   defaultDescription,
		Version:       defaultVersion,
	}
	if v, ok := h["name"]; ok {
		e.DisplayName = v
	}
	if v, ok := h["description"]; ok {
		e.Description = v
	}
	if v, ok := h["version"]; ok {
		e.Version = v
	}
	if v, ok := h["activation"]; ok {
		e.Activation = v
	}
	return e
}
