package store

import (
	"sync"

	"github.com/jcorbin/wordforth/forth"
)

// Memory is an in-memory Store.
type Memory struct {
	mu   sync.Mutex
	sess Session
}

// NewMemory creates a new, empty, in-memory store.
func NewMemory() *Memory { return &Memory{} }

func (m *Memory) Load() (Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return copySession(m.sess), nil
}

func (m *Memory) Save(sess Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sess = copySession(sess)
	return nil
}

func (m *Memory) Close() error { return nil }

func copySession(sess Session) Session {
	var out Session
	for _, w := range sess.Words {
		out.Words = append(out.Words, forth.Word{
			Name: w.Name,
			Body: append([]string(nil), w.Body...),
		})
	}
	out.Stack = append([]int32(nil), sess.Stack...)
	return out
}
