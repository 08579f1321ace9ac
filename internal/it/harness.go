package it

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	chatmeshpb "chatmesh/internal/gen/api"
)

// Cluster represents a test mesh of node processes
type Cluster struct {
	nodes      []*Node
	logDir     string
	binaryPath string
	mu         sync.Mutex
}

// Node represents a single node process in the test mesh
type Node struct {
	ID      string
	Addr    string
	Port    int
	cmd     *exec.Cmd
	logFile *os.File
	client  chatmeshpb.ChatMeshClient
}

// NewCluster creates a new test cluster harness
func NewCluster(binaryPath string) (*Cluster, error) {
	logDir := filepath.Join(".local", "it-logs")
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	return &Cluster{
		nodes:      make([]*Node, 0),
		logDir:     logDir,
		binaryPath: binaryPath,
	}, nil
}

// StartNode starts a single node process with the given full-mesh peer
// list ("id=addr,..."; the node excludes itself)
func (c *Cluster) StartNode(ctx context.Context, nodeID string, port int, peers string, ackQuorum int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	addr := fmt.Sprintf(":%d", port)
	logPath := filepath.Join(c.logDir, fmt.Sprintf("%s.log", nodeID))
	logFile, err := os.Create(logPath)
	if err != nil {
		return fmt.Errorf("failed to create log file: %w", err)
	}

	cmd := exec.CommandContext(ctx, c.binaryPath,
		"--node-id", nodeID,
		"--listen", addr,
		"--peers", peers,
		"--ack-quorum", fmt.Sprintf("%d", ackQuorum),
	)
	cmd.Stdout = logFile
	cmd.Stderr = logFile

	if err := cmd.Start(); err != nil {
		logFile.Close()
		return fmt.Errorf("failed to start node %s: %w", nodeID, err)
	}

	// Connect gRPC client
	dialCtx, dialCancel := context.WithTimeout(ctx, 5*time.Second)
	conn, err := grpc.DialContext(dialCtx,
		fmt.Sprintf("127.0.0.1:%d", port),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	dialCancel()
	if err != nil {
		cmd.Process.Kill()
		logFile.Close()
		return fmt.Errorf("failed to dial node %s: %w", nodeID, err)
	}

	node := &Node{
		ID:      nodeID,
		Addr:    fmt.Sprintf("127.0.0.1:%d", port),
		Port:    port,
		cmd:     cmd,
		logFile: logFile,
		client:  chatmeshpb.NewChatMeshClient(conn),
	}

	c.nodes = append(c.nodes, node)

	// Wait for node to be ready
	if err := c.waitForReady(ctx, node, 10*time.Second); err != nil {
		node.Stop()
		return fmt.Errorf("node %s failed to become ready: %w", nodeID, err)
	}

	return nil
}

// waitForReady waits for a node to answer its clock endpoint
func (c *Cluster) waitForReady(ctx context.Context, node *Node, timeout time.Duration) error {
	deadline := time.Now().Add(timeout)
	ticker := time.NewTicker(200 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if time.Now().After(deadline) {
				return fmt.Errorf("timeout waiting for node %s to be ready", node.ID)
			}

			clockCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
			_, err := node.client.Clock(clockCtx, &chatmeshpb.ClockRequest{})
			cancel()

			if err == nil {
				return nil
			}
		}
	}
}

// StartMesh starts a full mesh of n nodes with the given ack quorum
func (c *Cluster) StartMesh(ctx context.Context, n int, ackQuorum int) error {
	if c.binaryPath == "" {
		c.binaryPath = "./chatmesh"
	}
	if _, err := os.Stat(c.binaryPath); os.IsNotExist(err) {
		return fmt.Errorf("binary not found at %s, build it first with 'go build -o chatmesh ./cmd/chatmesh'", c.binaryPath)
	}

	basePort := 60051

	// Every node gets the full member list; each excludes itself.
	members := make([]string, 0, n)
	for i := 1; i <= n; i++ {
		members = append(members, fmt.Sprintf("n%d=127.0.0.1:%d", i, basePort+i-1))
	}
	peers := strings.Join(members, ",")

	for i := 1; i <= n; i++ {
		nodeID := fmt.Sprintf("n%d", i)
		if err := c.StartNode(ctx, nodeID, basePort+i-1, peers, ackQuorum); err != nil {
			c.Stop()
			return fmt.Errorf("failed to start node %s: %w", nodeID, err)
		}
	}

	return nil
}

// Stop stops all nodes in the cluster
func (c *Cluster) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, node := range c.nodes {
		node.Stop()
	}
	c.nodes = nil
}

// Stop stops a single node
func (n *Node) Stop() {
	if n.cmd != nil && n.cmd.Process != nil {
		n.cmd.Process.Kill()
		n.cmd.Wait()
	}
	if n.logFile != nil {
		n.logFile.Close()
	}
}

// GetClient returns the ChatMesh client for a node
func (n *Node) GetClient() chatmeshpb.ChatMeshClient {
	return n.client
}

// GetNode returns a node by ID
func (c *Cluster) GetNode(nodeID string) *Node {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, n := range c.nodes {
		if n.ID == nodeID {
			return n
		}
	}
	return nil
}

// KillNode kills a specific node
func (c *Cluster) KillNode(nodeID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, node := range c.nodes {
		if node.ID == nodeID {
			if node.cmd != nil && node.cmd.Process != nil {
				if err := node.cmd.Process.Kill(); err != nil {
					return fmt.Errorf("failed to kill node %s: %w", nodeID, err)
				}
				node.cmd.Wait()
			}
			return nil
		}
	}
	return fmt.Errorf("node %s not found", nodeID)
}
