package presence

import (
	"hash/fnv"
	"sync"

	"github.com/curelink-health/chat-service/internal/model"
)

// Channel is a live delivery endpoint for one connected actor. Send may be
// called from many goroutines.
type Channel interface {
	Send(event model.Event) error
}

const shardCount = 32

type shard struct {
	mu       sync.RWMutex
	channels map[string][]Channel
}

// Registry maps an online actor id to its active delivery channels. State is
// memory-resident only: a restart drops everything and clients refetch on
// reconnect. Operations on a single actor id are atomic relative to each
// other; different ids contend only within a shard.
type Registry struct {
	shards [shardCount]*shard
}

func NewRegistry() *Registry {
	r := &Registry{}
	for i := range r.shards {
		r.shards[i] = &shard{channels: make(map[string][]Channel)}
	}
	return r
}

func (r *Registry) shardFor(userID string) *shard {
	h := fnv.New32a()
	_, _ = h.Write([]byte(userID))
	return r.shards[h.Sum32()%shardCount]
}

// Join registers a delivery channel for the actor. One actor may hold
// several channels (multiple devices or tabs).
func (r *Registry) Join(userID string, ch Channel) {
	s := r.shardFor(userID)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.channels[userID] = append(s.channels[userID], ch)
}

// Leave removes one previously joined channel. The actor stays present
// while other channels remain.
func (r *Registry) Leave(userID string, ch Channel) {
	s := r.shardFor(userID)
	s.mu.Lock()
	defer s.mu.Unlock()

	channels := s.channels[userID]
	for i, existing := range channels {
		if existing == ch {
			channels = append(channels[:i], channels[i+1:]...)
			break
		}
	}

	if len(channels) == 0 {
		delete(s.channels, userID)
		return
	}
	s.channels[userID] = channels
}

// Lookup returns a snapshot of the actor's active channels; empty when the
// actor is offline.
func (r *Registry) Lookup(userID string) []Channel {
	s := r.shardFor(userID)
	s.mu.RLock()
	defer s.mu.RUnlock()

	channels := s.channels[userID]
	if len(channels) == 0 {
		return nil
	}
	out := make([]Channel, len(channels))
	copy(out, channels)
	return out
}

// Online returns the ids of every actor with at least one active channel.
func (r *Registry) Online() []string {
	var ids []string
	for _, s := range r.shards {
		s.mu.RLock()
		for id := range s.channels {
			ids = append(ids, id)
		}
		s.mu.RUnlock()
	}
	return ids
}
