package service

import (
	"errors"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/lshigami/tinysteps/config"
	"github.com/rs/zerolog/log"
)

// ErrWorkspaceNotFound is returned for unknown or expired form, batch and play ids.
var ErrWorkspaceNotFound = errors.New("workspace not found or expired")

// workspaces is a bounded, expiring store of server-held editing or play state.
type workspaces[V any] struct {
	kind  string
	cache *expirable.LRU[string, V]
}

func newWorkspaces[V any](kind string, cfg config.Authoring) *workspaces[V] {
	size, ttl := cfg.MaxWorkspaces, cfg.WorkspaceTTL
	if size <= 0 {
		size = 1024
	}
	if ttl <= 0 {
		ttl = 2 * time.Hour
	}
	onEvict := func(id string, _ V) {
		log.Debug().Str("kind", kind).Str("id", id).Msg("Workspace evicted")
	}
	return &workspaces[V]{kind: kind, cache: expirable.NewLRU[string, V](size, onEvict, ttl)}
}

func (w *workspaces[V]) add(id string, v V) {
	w.cache.Add(id, v)
	log.Debug().Str("kind", w.kind).Str("id", id).Int("open", w.cache.Len()).Msg("Workspace opened")
}

func (w *workspaces[V]) get(id string) (V, error) {
	v, ok := w.cache.Get(id)
	if !ok {
		var zero V
		return zero, ErrWorkspaceNotFound
	}
	return v, nil
}
