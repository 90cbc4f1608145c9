package player

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegistryPutGetDelete(t *testing.T) {
	r := NewRegistry()

	_, ok := r.Get("g1")
	assert.False(t, ok)

	r.Put(&Session{GuildID: "g1", SourceURL: "https://a.example/1"})
	r.Put(&Session{GuildID: "g2", SourceURL: "https://a.example/2"})

	s, ok := r.Get("g1")
	assert.True(t, ok)
	assert.Equal(t, "https://a.example/1", s.SourceURL)
	assert.Equal(t, 2, r.Len())

	r.Delete("g1")
	_, ok = r.Get("g1")
	assert.False(t, ok)
	assert.Equal(t, 1, r.Len())
}

func TestRegistryReplaceKeepsSingleEntry(t *testing.T) {
	r := NewRegistry()
	r.Put(&Session{GuildID: "g1", SourceURL: "https://a.example/1"})
	r.Put(&Session{GuildID: "g1", SourceURL: "https://a.example/2"})

	assert.Equal(t, 1, r.Len())
	s, _ := r.Get("g1")
	assert.Equal(t, "https://a.example/2", s.SourceURL)
}

func TestRegistryConcurrentAccess(t *testing.T) {
	r := NewRegistry()
	var wg sync.WaitGroup

	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id := fmt.Sprintf("guild-%d", i)
			r.Put(&Session{GuildID: id})
			r.Get(id)
			r.Delete(id)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 0, r.Len())
}
