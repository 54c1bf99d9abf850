package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/kolobok-kelbek/slotcache"
	"github.com/kolobok-kelbek/slotcache/lru"
	"github.com/kolobok-kelbek/slotcache/offheap"
)

func main() {
	capacity := 3
	flag.Func("capacity", "maximum number of cached entries (default 3)", func(s string) error {
		n, err := lru.ParseCapacity(s)
		if err != nil {
			return err
		}
		capacity = n
		return nil
	})
	useOffheap := flag.Bool("offheap", false, "keep keys and values in mmap'd memory")
	verbose := flag.Bool("v", false, "log cache internals")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slotcache.SetLogger(logger)

	if err := run(logger, capacity, *useOffheap); err != nil {
		logger.Error("demo failed", "error", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger, capacity int, useOffheap bool) (err error) {
	var c *lru.Cache[uint64, uint64]
	if useOffheap {
		c, err = lru.NewCacheWithStorage(capacity, offheap.Factory[uint64](), offheap.Factory[uint64]())
	} else {
		c, err = lru.NewCache[uint64, uint64](capacity)
	}
	if err != nil {
		return fmt.Errorf("create cache: %w", err)
	}
	defer func() {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close cache: %w", cerr)
		}
	}()

	logger.Info("cache ready", "capacity", c.Cap(), "pointer_bits", c.PointerWidth(), "offheap", useOffheap)

	// Fill the cache, then one more key evicts the oldest.
	for k := uint64(1); k <= uint64(c.Cap())+1; k++ {
		evicting := c.Len() == c.Cap()
		c.Set(k, k*k)
		if evicting {
			logger.Info("set evicted the least recently used entry", "key", k)
		}
	}
	logger.Info("after fill (MRU->LRU)", "keys", sample(c.Keys()))

	// Touch the least recently used key so it survives the next insert.
	keys := c.Keys()
	lruKey := keys[len(keys)-1]
	if v, ok := c.Get(lruKey); ok {
		logger.Info("get promotes", "key", lruKey, "value", v)
	}
	if v, ok := c.Peek(keys[0]); ok {
		logger.Info("peek does not promote", "key", keys[0], "value", v)
	}

	next := uint64(c.Cap()) + 2
	c.Set(next, next*next)
	logger.Info("after promotion and insert (MRU->LRU)", "keys", sample(c.Keys()), "promoted_kept", c.Has(lruKey))

	c.Clear()
	logger.Info("cleared", "len", c.Len(), "promoted_kept", c.Has(lruKey))
	return nil
}

// sample trims long key lists for display.
func sample(keys []uint64) []uint64 {
	if len(keys) > 8 {
		return keys[:8]
	}
	return keys
}
