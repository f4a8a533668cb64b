// Package weights simulates the kernel module's cache of dequantized
// weight blocks. Only tags and counters are kept; there is no weight
// data to store.
package weights

import (
	akitacache "github.com/sarchlab/akita/v4/mem/cache"
)

// Per-layer weight block identifiers.
const (
	// BlockAttention is the attention weight block of a layer.
	BlockAttention = iota
	// BlockFeedForward is the feed-forward weight block of a layer.
	BlockFeedForward

	blocksPerLayer
)

// Config holds weight cache configuration parameters.
type Config struct {
	// Blocks is the total number of cached weight blocks.
	Blocks int
	// Associativity (number of ways per set).
	Associativity int
	// BlockBytes is the size of one dequantized weight block.
	BlockBytes int
}

// DefaultConfig returns the default weight cache configuration.
// 32 blocks is deliberately smaller than a full 22-layer pass
// (22 layers x 2 blocks), so sustained generation keeps the cache
// under eviction pressure, like the real module under memory limits.
func DefaultConfig() Config {
	return Config{
		Blocks:        32,
		Associativity: 4,
		BlockBytes:    64 * 1024,
	}
}

// Statistics holds weight cache performance counters.
type Statistics struct {
	Lookups   uint64
	Hits      uint64
	Misses    uint64
	Evictions uint64
}

// HitRate returns the hit rate as a percentage, 0 when there have been
// no lookups.
func (s Statistics) HitRate() float64 {
	if s.Lookups == 0 {
		return 0
	}
	return 100.0 * float64(s.Hits) / float64(s.Lookups)
}

// Cache tracks which weight blocks are resident using an Akita cache
// directory with LRU replacement.
type Cache struct {
	config    Config
	directory *akitacache.DirectoryImpl
	stats     Statistics
}

// New creates a weight cache with the given configuration.
func New(config Config) *Cache {
	return &Cache{
		config:    config,
		directory: newDirectory(config),
	}
}

func newDirectory(config Config) *akitacache.DirectoryImpl {
	numSets := config.Blocks / config.Associativity
	return akitacache.NewDirectory(
		numSets,
		config.Associativity,
		config.BlockBytes,
		akitacache.NewLRUVictimFinder(),
	)
}

// Config returns the cache configuration.
func (c *Cache) Config() Config {
	return c.config
}

// Stats returns the performance counters.
func (c *Cache) Stats() Statistics {
	return c.stats
}

// Reset clears the directory and all counters.
func (c *Cache) Reset() {
	c.directory = newDirectory(c.config)
	c.stats = Statistics{}
}

// blockAddr maps a (layer, block) pair to its synthetic address.
func (c *Cache) blockAddr(layer, block int) uint64 {
	return uint64(layer*blocksPerLayer+block) * uint64(c.config.BlockBytes)
}

// Touch records an access to one weight block and reports whether it
// was resident. A miss selects an LRU victim, counts an eviction if the
// victim held a block, and installs the new tag.
func (c *Cache) Touch(layer, block int) bool {
	c.stats.Lookups++
	addr := c.blockAddr(layer, block)

	if b := c.directory.Lookup(0, addr); b != nil && b.IsValid {
		c.stats.Hits++
		c.directory.Visit(b)
		return true
	}

	c.stats.Misses++

	victim := c.directory.FindVictim(addr)
	if victim == nil {
		return false
	}
	if victim.IsValid {
		c.stats.Evictions++
	}

	victim.Tag = addr
	victim.IsValid = true
	c.directory.Visit(victim)
	return false
}
