package domain

// MatchingFile pairs a duplicate regular file found in the target tree with
// the authoritative path a replacement symlink should point at. DestPath
// always names a regular file from the target index, never a symlink.
type MatchingFile struct {
	SrcPath  string
	DestPath string
}
