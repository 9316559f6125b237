package domain

// CacheEntry is a previously computed content hash together with the file
// metadata it was observed under. Any change in size or modification time
// since the entry was stored invalidates it; a stale hash is never served.
type CacheEntry struct {
	Size        int64       `json:"size"`
	ModTimeNano int64       `json:"mtime_ns"`
	Hash        ContentHash `json:"hash"`
}
