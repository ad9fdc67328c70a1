package cache

import (
	"container/list"
	"image"
	"sync"
)

// Key identifies a static face layer. Everything that changes from tick to
// tick (hands, pivot) is drawn on top of it, so the layer only depends on
// the face geometry.
type Key struct {
	Diameter  int
	Roundness int
}

// Service implements an LRU cache for rendered face layers
type Service struct {
	mu      sync.Mutex
	maxSize int
	entries map[Key]*list.Element
	lruList *list.List
	hits    int
	misses  int
}

// cacheEntry holds a cached layer with its key
type cacheEntry struct {
	key   Key
	layer *image.RGBA
}

// New creates a new cache service
func New(maxSize int) *Service {
	if maxSize <= 0 {
		maxSize = 8 // three size tiers times a couple of roundness values
	}

	return &Service{
		maxSize: maxSize,
		entries: make(map[Key]*list.Element),
		lruList: list.New(),
	}
}

// Get returns the cached layer for key, or nil. Callers must treat the
// returned image as read-only.
func (s *Service) Get(key Key) *image.RGBA {
	s.mu.Lock()
	defer s.mu.Unlock()

	elem, exists := s.entries[key]
	if !exists {
		s.misses++
		return nil
	}

	s.hits++
	s.lruList.MoveToFront(elem)
	return elem.Value.(*cacheEntry).layer
}

// Set caches layer under key
func (s *Service) Set(key Key, layer *image.RGBA) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if elem, exists := s.entries[key]; exists {
		elem.Value.(*cacheEntry).layer = layer
		s.lruList.MoveToFront(elem)
		return
	}

	s.entries[key] = s.lruList.PushFront(&cacheEntry{key: key, layer: layer})
	s.enforceMaxSize()
}

// GetOrCreate returns the cached layer for key, building and caching it
// with build on a miss.
func (s *Service) GetOrCreate(key Key, build func() *image.RGBA) *image.RGBA {
	if layer := s.Get(key); layer != nil {
		return layer
	}
	layer := build()
	s.Set(key, layer)
	return layer
}

// enforceMaxSize removes old entries if cache exceeds max size
func (s *Service) enforceMaxSize() {
	for s.lruList.Len() > s.maxSize {
		elem := s.lruList.Back()
		if elem == nil {
			return
		}
		entry := s.lruList.Remove(elem).(*cacheEntry)
		delete(s.entries, entry.key)
	}
}

// Stats returns cache statistics
func (s *Service) Stats() CacheStats {
	s.mu.Lock()
	defer s.mu.Unlock()

	return CacheStats{
		Size:    s.lruList.Len(),
		MaxSize: s.maxSize,
		Hits:    s.hits,
		Misses:  s.misses,
	}
}

// CacheStats holds cache statistics
type CacheStats struct {
	Size    int `json:"size"`
	MaxSize int `json:"max_size"`
	Hits    int `json:"hits"`
	Misses  int `json:"misses"`
}
