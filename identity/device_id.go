package identity

import (
	"log"
	"sync"

	"github.com/google/uuid"

	"caremap/config"
	"caremap/db"
)

// Provider hands out a stable pseudo-random device identifier. The id is
// generated once, cached for the process lifetime, and persisted to the
// local store on a best-effort basis so it survives restarts. Generation
// never touches the network.
type Provider struct {
	store db.RedisClient

	mu     sync.Mutex
	cached string
}

// NewProvider constructs a Provider backed by the given local store. A nil
// store still works: the id just won't survive a restart.
func NewProvider(store db.RedisClient) *Provider {
	return &Provider{store: store}
}

// DeviceID returns the install's identifier, generating it on first access.
func (p *Provider) DeviceID() string {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.cached != "" {
		return p.cached
	}

	if p.store != nil {
		if stored, err := p.store.Get(config.DEVICE_ID_KEY_V1); err == nil && stored != "" {
			p.cached = stored
			return stored
		}
	}

	id := uuid.NewString()
	if p.store != nil {
		if err := p.store.Set(config.DEVICE_ID_KEY_V1, id); err != nil {
			log.Printf("[identity] Failed to persist device id: %v", err)
		}
	}
	p.cached = id
	return id
}

// Headers returns the per-device header attached to every API request.
func (p *Provider) Headers() map[string]string {
	return map[string]string{config.DEVICE_ID_HEADER: p.DeviceID()}
}
