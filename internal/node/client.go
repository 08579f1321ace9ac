package node

import (
	"context"
	"fmt"
	"sync"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	chatmeshpb "chatmesh/internal/gen/api"
)

const (
	// Connection timeout
	dialTimeout = 5 * time.Second
)

// ClientManager manages gRPC clients to peer nodes.
type ClientManager struct {
	mu           sync.RWMutex
	conns        map[string]*grpc.ClientConn
	relayClients map[string]chatmeshpb.RelayClient
}

// NewClientManager creates a new client manager.
func NewClientManager() *ClientManager {
	return &ClientManager{
		conns:        make(map[string]*grpc.ClientConn),
		relayClients: make(map[string]chatmeshpb.RelayClient),
	}
}

// GetRelayClient returns a Relay client for the given node address.
// Creates a new connection if one doesn't exist.
func (cm *ClientManager) GetRelayClient(addr string) (chatmeshpb.RelayClient, error) {
	cm.mu.RLock()
	client, exists := cm.relayClients[addr]
	cm.mu.RUnlock()

	if exists {
		return client, nil
	}

	// Create new connection
	cm.mu.Lock()
	defer cm.mu.Unlock()

	// Double-check after acquiring write lock
	if client, exists := cm.relayClients[addr]; exists {
		return client, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), dialTimeout)
	defer cancel()

	conn, err := grpc.DialContext(ctx, addr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithBlock(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to dial %s: %w", addr, err)
	}

	client = chatmeshpb.NewRelayClient(conn)
	cm.conns[addr] = conn
	cm.relayClients[addr] = client
	return client, nil
}

// Close closes all client connections.
func (cm *ClientManager) Close() {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	for addr, conn := range cm.conns {
		conn.Close()
		delete(cm.conns, addr)
		delete(cm.relayClients, addr)
	}
}
