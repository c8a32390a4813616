package prefs

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStore_GetDefault(t *testing.T) {
	s := NewStore()

	p := s.Get(100, []string{"a.com", "b.com"})
	assert.Equal(t, "a.com", p.Domain, "unknown user gets first allowed domain")
}

func TestStore_SetThenGet(t *testing.T) {
	s := NewStore()
	allowed := []string{"a.com", "b.com", "c.com"}

	for _, d := range allowed {
		p := s.Set(42, d)
		assert.Equal(t, d, p.Domain)
		assert.Equal(t, d, s.Get(42, allowed).Domain)
	}
}

func TestStore_StaleDomainFallsBack(t *testing.T) {
	s := NewStore()
	s.Set(42, "old.com")
	assert.Equal(t, "old.com", s.Get(42, []string{"old.com", "new.com"}).Domain)

	// allow-list changed, stored value silently replaced by the first entry
	assert.Equal(t, "new.com", s.Get(42, []string{"new.com"}).Domain)
}

func TestStore_GetAlwaysInAllowList(t *testing.T) {
	s := NewStore()
	s.Set(1, "whatever.com")

	lists := [][]string{
		{"a.com"},
		{"a.com", "b.com"},
		{"x.org", "y.org", "z.org"},
	}
	for _, allowed := range lists {
		p := s.Get(1, allowed)
		assert.Contains(t, allowed, p.Domain)
	}
}

func TestStore_EmptyAllowList(t *testing.T) {
	s := NewStore()
	assert.Empty(t, s.Get(1, nil).Domain, "degenerate empty list yields zero preference")
}

func TestStore_UsersIsolated(t *testing.T) {
	s := NewStore()
	allowed := []string{"a.com", "b.com"}

	s.Set(1, "b.com")
	assert.Equal(t, "b.com", s.Get(1, allowed).Domain)
	assert.Equal(t, "a.com", s.Get(2, allowed).Domain, "other user unaffected")
}

func TestStore_Concurrent(t *testing.T) {
	s := NewStore()
	allowed := []string{"a.com", "b.com"}

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func(n int) {
			defer wg.Done()
			s.Set(int64(n%5), allowed[n%2])
		}(i)
		go func(n int) {
			defer wg.Done()
			p := s.Get(int64(n%5), allowed)
			assert.Contains(t, allowed, p.Domain)
		}(i)
	}
	wg.Wait()

	for id := int64(0); id < 5; id++ {
		assert.Contains(t, allowed, s.Get(id, allowed).Domain, fmt.Sprintf("user %d", id))
	}
}
