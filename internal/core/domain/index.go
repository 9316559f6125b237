package domain

import "iter"

// Index maps each content hash to the ordered set of entries sharing it,
// built fresh for one tree on every run. Entries within a bucket keep
// discovery order; iteration order across buckets is map order and is not
// stable between runs.
type Index struct {
	buckets map[ContentHash][]Entry
}

// NewIndex creates an empty Index.
func NewIndex() *Index {
	return &Index{buckets: make(map[ContentHash][]Entry)}
}

// Add appends entry to the bucket for hash.
func (i *Index) Add(hash ContentHash, entry Entry) {
	i.buckets[hash] = append(i.buckets[hash], entry)
}

// Bucket returns the entries recorded under hash, in discovery order.
// It returns nil for an unknown hash.
func (i *Index) Bucket(hash ContentHash) []Entry {
	return i.buckets[hash]
}

// Buckets iterates over every hash bucket.
func (i *Index) Buckets() iter.Seq2[ContentHash, []Entry] {
	return func(yield func(ContentHash, []Entry) bool) {
		for hash, entries := range i.buckets {
			if !yield(hash, entries) {
				return
			}
		}
	}
}

// Len returns the number of distinct hashes in the index.
func (i *Index) Len() int {
	return len(i.buckets)
}

// Empty reports whether nothing has been discovered.
func (i *Index) Empty() bool {
	return len(i.buckets) == 0
}
