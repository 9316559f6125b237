package domain

// Entry is a single discovered filesystem entry. It is a closed variant:
// either a RegularFile or a Symlink. Directories never become entries.
type Entry interface {
	// Path returns the entry's own location on disk. For a symlink this is
	// the link itself, not what it points at.
	Path() string

	isEntry()
}

// RegularFile is a plain file discovered during traversal.
type RegularFile struct {
	FilePath string
}

// Path returns the file's location.
func (f RegularFile) Path() string { return f.FilePath }

func (RegularFile) isEntry() {}

// Symlink is a symbolic link discovered during traversal. TargetPath is the
// raw link target as read from the link, never canonicalized or verified to
// exist.
type Symlink struct {
	LinkPath   string
	TargetPath string
}

// Path returns the link's own location.
func (s Symlink) Path() string { return s.LinkPath }

func (Symlink) isEntry() {}
