package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParsePeers(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []Peer
		wantErr bool
	}{
		{
			name:  "empty string",
			input: "",
			want:  []Peer{},
		},
		{
			name:  "single peer",
			input: "n1=127.0.0.1:50051",
			want: []Peer{
				{ID: "n1", Addr: "127.0.0.1:50051"},
			},
		},
		{
			name:  "multiple peers",
			input: "n1=127.0.0.1:50051,n2=127.0.0.1:50052,n3=127.0.0.1:50053",
			want: []Peer{
				{ID: "n1", Addr: "127.0.0.1:50051"},
				{ID: "n2", Addr: "127.0.0.1:50052"},
				{ID: "n3", Addr: "127.0.0.1:50053"},
			},
		},
		{
			name:  "with spaces",
			input: "n1 = 127.0.0.1:50051 , n2 = 127.0.0.1:50052",
			want: []Peer{
				{ID: "n1", Addr: "127.0.0.1:50051"},
				{ID: "n2", Addr: "127.0.0.1:50052"},
			},
		},
		{
			name:    "invalid format - no equals",
			input:   "n1:127.0.0.1:50051",
			wantErr: true,
		},
		{
			name:    "invalid format - empty ID",
			input:   "=127.0.0.1:50051",
			wantErr: true,
		},
		{
			name:    "invalid format - empty addr",
			input:   "n1=",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePeers(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParsePeers() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr {
				if len(got) != len(tt.want) {
					t.Errorf("ParsePeers() length = %d, want %d", len(got), len(tt.want))
					return
				}
				for i := range got {
					if got[i].ID != tt.want[i].ID || got[i].Addr != tt.want[i].Addr {
						t.Errorf("ParsePeers()[%d] = %v, want %v", i, got[i], tt.want[i])
					}
				}
			}
		})
	}
}

func TestConfig_PeerList(t *testing.T) {
	cfg := &Config{
		NodeID:     "n1",
		ListenAddr: "127.0.0.1:50051",
		Peers: []Peer{
			{ID: "n1", Addr: "127.0.0.1:50051"},
			{ID: "n2", Addr: "127.0.0.1:50052"},
			{ID: "n3", Addr: "127.0.0.1:50053"},
		},
	}

	peers := cfg.PeerList()
	if len(peers) != 2 {
		t.Fatalf("Expected 2 peers after self exclusion, got %d", len(peers))
	}
	for _, peer := range peers {
		if peer.ID == "n1" {
			t.Error("Self node found in peer list")
		}
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{
			name: "valid",
			cfg: Config{
				NodeID:     "n1",
				ListenAddr: ":50051",
				Peers:      []Peer{{ID: "n2", Addr: ":50052"}},
				AckQuorum:  1,
			},
		},
		{
			name:    "missing node ID",
			cfg:     Config{ListenAddr: ":50051"},
			wantErr: true,
		},
		{
			name:    "missing listen address",
			cfg:     Config{NodeID: "n1"},
			wantErr: true,
		},
		{
			name: "negative ack quorum",
			cfg: Config{
				NodeID:     "n1",
				ListenAddr: ":50051",
				AckQuorum:  -1,
			},
			wantErr: true,
		},
		{
			name: "ack quorum exceeds peers",
			cfg: Config{
				NodeID:     "n1",
				ListenAddr: ":50051",
				Peers:      []Peer{{ID: "n2", Addr: ":50052"}},
				AckQuorum:  2,
			},
			wantErr: true,
		},
		{
			name: "self entry does not count toward quorum capacity",
			cfg: Config{
				NodeID:     "n1",
				ListenAddr: ":50051",
				Peers: []Peer{
					{ID: "n1", Addr: ":50051"},
					{ID: "n2", Addr: ":50052"},
				},
				AckQuorum: 2,
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "node.yaml")

	content := `node_id: n1
listen: 127.0.0.1:50051
ack_quorum: 1
peers:
  - id: n2
    addr: 127.0.0.1:50052
  - id: n3
    addr: 127.0.0.1:50053
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.NodeID != "n1" {
		t.Errorf("Expected node_id n1, got %s", cfg.NodeID)
	}
	if cfg.ListenAddr != "127.0.0.1:50051" {
		t.Errorf("Expected listen 127.0.0.1:50051, got %s", cfg.ListenAddr)
	}
	if cfg.AckQuorum != 1 {
		t.Errorf("Expected ack_quorum 1, got %d", cfg.AckQuorum)
	}
	if len(cfg.Peers) != 2 || cfg.Peers[0].ID != "n2" || cfg.Peers[1].Addr != "127.0.0.1:50053" {
		t.Errorf("Unexpected peers: %v", cfg.Peers)
	}
}

func TestLoad_Missing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("Expected error for missing config file")
	}
}
