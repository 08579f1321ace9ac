package node

import (
	"fmt"
	"log"
	"net"

	"google.golang.org/grpc"
	"google.golang.org/grpc/reflection"

	"chatmesh/internal/clock"
	"chatmesh/internal/config"
	chatmeshpb "chatmesh/internal/gen/api"
	"chatmesh/internal/journal"
)

// Node represents a single node in the mesh. It owns the one shared
// clock and journal instance that every server and handler on this
// node stamps through.
type Node struct {
	nodeID     string
	listenAddr string
	grpcServer *grpc.Server
	clock      *clock.LamportClock
	journal    *journal.Journal
	clients    *ClientManager
	peers      []config.Peer
	ackQuorum  int
}

// NewNode creates a new node instance from the given configuration.
func NewNode(cfg *config.Config) *Node {
	return &Node{
		nodeID:     cfg.NodeID,
		listenAddr: cfg.ListenAddr,
		clock:      clock.New(),
		journal:    journal.New(),
		clients:    NewClientManager(),
		peers:      cfg.PeerList(),
		ackQuorum:  cfg.AckQuorum,
	}
}

// Start starts the gRPC server and begins listening.
func (n *Node) Start() error {
	lis, err := net.Listen("tcp", n.listenAddr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", n.listenAddr, err)
	}

	n.grpcServer = grpc.NewServer()

	server := NewServer(n.nodeID, n.clock, n.journal, n.clients, n.peers, n.ackQuorum)
	chatmeshpb.RegisterChatMeshServer(n.grpcServer, server)

	relay := NewRelayServer(n.nodeID, n.clock, n.journal)
	chatmeshpb.RegisterRelayServer(n.grpcServer, relay)

	// Enable gRPC reflection for grpcurl
	reflection.Register(n.grpcServer)

	log.Printf("[%s] Starting node on %s with %d peers", n.nodeID, n.listenAddr, len(n.peers))

	if err := n.grpcServer.Serve(lis); err != nil {
		return fmt.Errorf("failed to serve: %w", err)
	}

	return nil
}

// Stop gracefully stops the node.
func (n *Node) Stop() {
	if n.grpcServer != nil {
		log.Printf("[%s] Stopping node", n.nodeID)
		n.grpcServer.GracefulStop()
	}
	n.clients.Close()
}
