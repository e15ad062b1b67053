package session

import (
	"sync"

	"github.com/gofiber/fiber/v2"
)

// MemoryStore Store en memoria para un único navegador; se usa en tests y en la CLI.
type MemoryStore struct {
	mu  sync.Mutex
	p   Persisted
	set bool
}

// NewMemoryStore crea un store vacío.
func NewMemoryStore() *MemoryStore { return &MemoryStore{} }

func (m *MemoryStore) Load(_ *fiber.Ctx) (Persisted, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.p, m.set
}

func (m *MemoryStore) Save(_ *fiber.Ctx, p Persisted) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.p, m.set = p, true
	return nil
}

func (m *MemoryStore) Clear(_ *fiber.Ctx) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.p, m.set = Persisted{}, false
}
