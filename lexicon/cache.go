package lexicon

import (
	"sync"

	"github.com/rs/zerolog/log"
)

// Cache holds loaded word lists keyed by source name, so that a long-lived
// process (the shell, the worker) reads each dictionary once.
type Cache struct {
	sync.Mutex
	lists map[string][]string
}

func NewCache() *Cache {
	return &Cache{lists: make(map[string][]string)}
}

// Words returns the words for src, loading them on first use. The returned
// slice is shared; callers must not modify it.
func (c *Cache) Words(src Source) ([]string, error) {
	key := src.Name()
	c.Lock()
	defer c.Unlock()
	if words, ok := c.lists[key]; ok {
		log.Debug().Str("key", key).Msg("getting-words-from-cache")
		return words, nil
	}
	log.Debug().Str("key", key).Msg("loading-words-into-cache")
	words, err := src.Words()
	if err != nil {
		return nil, err
	}
	c.lists[key] = words
	return words, nil
}

// Len is the number of cached lists.
func (c *Cache) Len() int {
	c.Lock()
	defer c.Unlock()
	return len(c.lists)
}
