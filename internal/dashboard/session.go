package dashboard

import (
	"sync"

	"smartagri/internal/domain/entity"
)

// SessionHolder owns the identity of one dashboard session.
//
// Change listeners run synchronously inside Set and Clear, in registration
// order. When Set returns every listener has finished, so a listener that
// tears down subscriptions has done so before the caller continues.
type SessionHolder struct {
	changeMu sync.Mutex

	mu        sync.RWMutex
	identity  *entity.Identity
	listeners []func(*entity.Identity)
}

func NewSessionHolder() *SessionHolder {
	return &SessionHolder{}
}

// Set records identity as the current one. Setting an identical identity
// again is a no-op.
func (h *SessionHolder) Set(identity entity.Identity) {
	h.changeMu.Lock()
	defer h.changeMu.Unlock()

	h.mu.Lock()
	if h.identity != nil && *h.identity == identity {
		h.mu.Unlock()
		return
	}
	h.identity = &identity
	listeners := h.listeners
	h.mu.Unlock()

	for _, fn := range listeners {
		copied := identity
		fn(&copied)
	}
}

// Clear marks the session unauthenticated.
func (h *SessionHolder) Clear() {
	h.changeMu.Lock()
	defer h.changeMu.Unlock()

	h.mu.Lock()
	if h.identity == nil {
		h.mu.Unlock()
		return
	}
	h.identity = nil
	listeners := h.listeners
	h.mu.Unlock()

	for _, fn := range listeners {
		fn(nil)
	}
}

func (h *SessionHolder) Current() (entity.Identity, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if h.identity == nil {
		return entity.Identity{}, false
	}
	return *h.identity, true
}

// OnChange registers fn to be called with the new identity, or nil on sign-out.
func (h *SessionHolder) OnChange(fn func(*entity.Identity)) {
	h.mu.Lock()
	h.listeners = append(h.listeners, fn)
	h.mu.Unlock()
}
