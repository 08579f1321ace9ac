package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Peer represents a peer node in the mesh.
type Peer struct {
	ID   string `yaml:"id"`
	Addr string `yaml:"addr"`
}

// Config holds the node configuration.
type Config struct {
	NodeID     string `yaml:"node_id"`
	ListenAddr string `yaml:"listen"`
	Peers      []Peer `yaml:"peers"`
	// AckQuorum is the number of peer delivery acks a Publish needs to
	// report success. Zero means best-effort: any ack count succeeds.
	AckQuorum int `yaml:"ack_quorum"`
}

// Load reads a YAML config file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return &cfg, nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.NodeID == "" {
		return fmt.Errorf("node ID cannot be empty")
	}
	if c.ListenAddr == "" {
		return fmt.Errorf("listen address cannot be empty")
	}
	if c.AckQuorum < 0 {
		return fmt.Errorf("ack quorum cannot be negative: %d", c.AckQuorum)
	}
	if c.AckQuorum > len(c.PeerList()) {
		return fmt.Errorf("ack quorum %d exceeds peer count %d", c.AckQuorum, len(c.PeerList()))
	}
	return nil
}

// ParsePeers parses a comma-separated list of peers in the format:
// "id1=addr1,id2=addr2,id3=addr3"
func ParsePeers(peersStr string) ([]Peer, error) {
	if peersStr == "" {
		return []Peer{}, nil
	}

	parts := strings.Split(peersStr, ",")
	peers := make([]Peer, 0, len(parts))

	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		kv := strings.SplitN(part, "=", 2)
		if len(kv) != 2 {
			return nil, fmt.Errorf("invalid peer format: %s (expected id=addr)", part)
		}

		id := strings.TrimSpace(kv[0])
		addr := strings.TrimSpace(kv[1])

		if id == "" || addr == "" {
			return nil, fmt.Errorf("peer ID and address cannot be empty: %s", part)
		}

		peers = append(peers, Peer{
			ID:   id,
			Addr: addr,
		})
	}

	return peers, nil
}

// PeerList returns the configured peers with any self entry removed.
// Listing the node itself among its peers is a common configuration
// shortcut and must not cause the node to deliver to itself.
func (c *Config) PeerList() []Peer {
	peers := make([]Peer, 0, len(c.Peers))
	for _, peer := range c.Peers {
		if peer.ID != c.NodeID {
			peers = append(peers, peer)
		}
	}
	return peers
}
