package net

import (
	"log"
	"sync"

	"github.com/gorilla/websocket"
)

// Peer is one connected drawing client.
type Peer struct {
	Conn      *websocket.Conn
	SessionID string
}

// PeerManager tracks the live websocket connections of a server.
type PeerManager struct {
	peers map[string]*Peer
	mu    sync.RWMutex
}

// NewPeerManager creates a new manager.
func NewPeerManager() *PeerManager {
	return &PeerManager{
		peers: make(map[string]*Peer),
	}
}

// Add registers a peer under its session ID.
func (pm *PeerManager) Add(peer *Peer) {
	pm.mu.Lock()
	defer pm.mu.Unlock()
	pm.peers[peer.SessionID] = peer
	log.Printf("[WS] Client %s connected as session %s", peer.Conn.RemoteAddr(), peer.SessionID)
}

// Remove forgets a peer.
func (pm *PeerManager) Remove(peer *Peer) {
	pm.mu.Lock()
	defer pm.mu.Unlock()
	delete(pm.peers, peer.SessionID)
	log.Printf("[WS] Session %s closed", peer.SessionID)
}

// Count returns the number of live peers.
func (pm *PeerManager) Count() int {
	pm.mu.RLock()
	defer pm.mu.RUnlock()
	return len(pm.peers)
}

// CloseAll closes every connection. Each read loop then exits and removes
// its peer.
func (pm *PeerManager) CloseAll() {
	pm.mu.RLock()
	defer pm.mu.RUnlock()
	for _, p := range pm.peers {
		if err := p.Conn.Close(); err != nil {
			log.Printf("[WS] Error closing session %s: %v", p.SessionID, err)
		}
	}
}
