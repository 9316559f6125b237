package ports

import "go.trai.ch/undup/internal/core/domain"

// Hasher defines the pluggable hashing backend. Implementations stream file
// content in bounded chunks and always open through symlinks, so hashing a
// link yields the hash of its target's content.
//
//go:generate mockgen -source=hasher.go -destination=mocks/mock_hasher.go -package=mocks
type Hasher interface {
	// HashFile computes the content hash of the file at path.
	HashFile(path string) (domain.ContentHash, error)
}
