package value

import "sync"

// nameStorageBlockSize mirrors PUSH_NAME_STORAGE_BLOCK_SIZE from the
// original C implementation (push.h): a pre-sizing hint for the backing
// map of a fresh interning pool, not a program-visible config key.
const nameStorageBlockSize = 1024

// Pool interns name strings for one interpreter and the clones made from
// it, which share its pool. Two Names minted
// from the same Pool for equal strings are the same pointer, which is what
// gives Name and Instr values their identity-equality semantics (spec §3).
type Pool struct {
	mu sync.Mutex
	m  map[string]*Name
}

// NewPool returns an empty, ready-to-use interning pool.
func NewPool() *Pool {
	return &Pool{m: make(map[string]*Name, nameStorageBlockSize)}
}

// Intern returns the canonical *Name for s, minting one if this is the
// first time s has been seen by this pool.
func (p *Pool) Intern(s string) *Name {
	p.mu.Lock()
	defer p.mu.Unlock()
	if n, ok := p.m[s]; ok {
		return n
	}
	n := &Name{s: s}
	p.m[s] = n
	return n
}

// Names returns every name this pool has interned so far, in unspecified
// order.
func (p *Pool) Names() []*Name {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]*Name, 0, len(p.m))
	for _, n := range p.m {
		out = append(out, n)
	}
	return out
}

// Len reports how many distinct names have been interned.
func (p *Pool) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.m)
}
