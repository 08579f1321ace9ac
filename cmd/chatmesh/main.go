package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"chatmesh/internal/config"
	"chatmesh/internal/node"
)

const defaultListenAddr = ":50051"

func main() {
	var (
		nodeID     = flag.String("node-id", "", "unique node identifier")
		listenAddr = flag.String("listen", "", "gRPC listen address (default \":50051\")")
		peersStr   = flag.String("peers", "", "comma-separated peers as id=addr")
		configPath = flag.String("config", "", "optional YAML config file; flags override it")
		ackQuorum  = flag.Int("ack-quorum", 0, "peer acks required for publish success (0 = best effort)")
	)
	flag.Parse()

	cfg := &config.Config{}
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatalf("config: %v", err)
		}
		cfg = loaded
	}

	if *nodeID != "" {
		cfg.NodeID = *nodeID
	}
	if *listenAddr != "" {
		cfg.ListenAddr = *listenAddr
	}
	if *peersStr != "" {
		peers, err := config.ParsePeers(*peersStr)
		if err != nil {
			log.Fatalf("config: %v", err)
		}
		cfg.Peers = peers
	}
	if *ackQuorum > 0 {
		cfg.AckQuorum = *ackQuorum
	}
	if cfg.ListenAddr == "" {
		cfg.ListenAddr = defaultListenAddr
	}

	if err := cfg.Validate(); err != nil {
		flag.Usage()
		log.Fatalf("invalid configuration: %v", err)
	}

	n := node.NewNode(cfg)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		errCh <- n.Start()
	}()

	select {
	case err := <-errCh:
		if err != nil {
			log.Fatalf("node: %v", err)
		}
	case sig := <-sigCh:
		log.Printf("Received %v, shutting down", sig)
		n.Stop()
	}
}
