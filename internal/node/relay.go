package node

import (
	"context"
	"fmt"
	"log"
	"time"

	"chatmesh/internal/clock"
	chatmeshpb "chatmesh/internal/gen/api"
	"chatmesh/internal/journal"
)

// RelayServer implements the Relay gRPC service used by peers to hand
// over timestamped messages.
type RelayServer struct {
	chatmeshpb.UnimplementedRelayServer
	nodeID  string
	clock   *clock.LamportClock
	journal *journal.Journal
}

// NewRelayServer creates a new relay server instance.
func NewRelayServer(nodeID string, c *clock.LamportClock, j *journal.Journal) *RelayServer {
	return &RelayServer{
		nodeID:  nodeID,
		clock:   c,
		journal: j,
	}
}

// Deliver handles a message from a peer. The carried timestamp is
// merged into the local clock before the message is recorded, so the
// receive event is always stamped strictly after the sender's send
// event.
func (s *RelayServer) Deliver(ctx context.Context, req *chatmeshpb.DeliverRequest) (*chatmeshpb.DeliverResponse, error) {
	if req.Event == nil {
		return nil, fmt.Errorf("deliver request from %s carries no event", req.FromId)
	}
	if req.Event.MessageId == "" {
		return nil, fmt.Errorf("deliver request from %s carries no message ID", req.FromId)
	}

	merged := s.clock.ReceiveEvent(clock.LamportTime(req.Event.Timestamp))

	s.journal.Append(protoToEntry(req.Event, time.Now()))

	log.Printf("[%s] Deliver from %s: message=%s remote_ts=%d local_ts=%d",
		s.nodeID, req.FromId, req.Event.MessageId, req.Event.Timestamp, merged)

	return &chatmeshpb.DeliverResponse{
		ResponderId: s.nodeID,
		Timestamp:   uint64(merged),
	}, nil
}

// Ping handles liveness checks. A ping is a message like any other:
// the carried clock value is merged so causality survives even on
// quiet links.
func (s *RelayServer) Ping(ctx context.Context, req *chatmeshpb.PingRequest) (*chatmeshpb.PingResponse, error) {
	merged := s.clock.ReceiveEvent(clock.LamportTime(req.Time))
	return &chatmeshpb.PingResponse{
		ResponderId: s.nodeID,
		Time:        uint64(merged),
	}, nil
}
