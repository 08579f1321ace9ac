package node

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"chatmesh/internal/clock"
	"chatmesh/internal/config"
	chatmeshpb "chatmesh/internal/gen/api"
	"chatmesh/internal/journal"
)

const (
	// DeliverTimeout bounds the whole peer fan-out of one Publish.
	DeliverTimeout = 2 * time.Second
)

// Server implements the ChatMesh gRPC service.
type Server struct {
	chatmeshpb.UnimplementedChatMeshServer
	nodeID    string
	clock     *clock.LamportClock
	journal   *journal.Journal
	clients   *ClientManager
	peers     []config.Peer
	ackQuorum int
}

// NewServer creates a new ChatMesh server instance.
func NewServer(nodeID string, c *clock.LamportClock, j *journal.Journal, cm *ClientManager, peers []config.Peer, ackQuorum int) *Server {
	return &Server{
		nodeID:    nodeID,
		clock:     c,
		journal:   j,
		clients:   cm,
		peers:     peers,
		ackQuorum: ackQuorum,
	}
}

// Publish handles Publish requests. The message is stamped with a send
// event, recorded locally, and fanned out to every peer.
func (s *Server) Publish(ctx context.Context, req *chatmeshpb.PublishRequest) (*chatmeshpb.PublishResponse, error) {
	log.Printf("[%s] Publish request: client_id=%s, body=%d bytes",
		s.nodeID, req.ClientId, len(req.Body))

	if len(req.Body) == 0 {
		return &chatmeshpb.PublishResponse{
			Status:       chatmeshpb.PublishResponse_ERROR,
			ErrorMessage: "message body cannot be empty",
		}, nil
	}

	id := uuid.NewString()
	ts := s.clock.SendEvent()

	s.journal.Append(journal.Entry{
		Timestamp: ts,
		Origin:    s.nodeID,
		ID:        id,
		Body:      req.Body,
		Received:  time.Now(),
	})

	event := &chatmeshpb.Event{
		MessageId: id,
		OriginId:  s.nodeID,
		Timestamp: uint64(ts),
		Body:      req.Body,
	}

	acks := s.fanOut(ctx, event)

	resp := &chatmeshpb.PublishResponse{
		Status:    chatmeshpb.PublishResponse_SUCCESS,
		MessageId: id,
		Timestamp: uint64(ts),
		Delivered: uint32(acks),
		Peers:     uint32(len(s.peers)),
	}
	if s.ackQuorum > 0 && acks < s.ackQuorum {
		resp.Status = chatmeshpb.PublishResponse_ERROR
		resp.ErrorMessage = fmt.Sprintf("delivery quorum not met: acks=%d required=%d peers=%d",
			acks, s.ackQuorum, len(s.peers))
	}
	return resp, nil
}

// fanOut delivers the event to all peers in parallel and returns the
// number of acks received. Failed peers are logged and skipped;
// delivery is best-effort.
func (s *Server) fanOut(ctx context.Context, event *chatmeshpb.Event) int {
	if len(s.peers) == 0 {
		return 0
	}

	deliverCtx, cancel := context.WithTimeout(ctx, DeliverTimeout)
	defer cancel()

	var (
		mu   sync.Mutex
		acks int
		wg   sync.WaitGroup
	)

	for _, peer := range s.peers {
		wg.Add(1)
		go func(p config.Peer) {
			defer wg.Done()

			client, err := s.clients.GetRelayClient(p.Addr)
			if err != nil {
				log.Printf("[%s] Deliver to %s skipped: %v", s.nodeID, p.ID, err)
				return
			}

			ack, err := client.Deliver(deliverCtx, &chatmeshpb.DeliverRequest{
				FromId: s.nodeID,
				Event:  event,
			})
			if err != nil {
				log.Printf("[%s] Deliver to %s failed: %v", s.nodeID, p.ID, err)
				return
			}

			log.Printf("[%s] Delivered %s to %s, peer time %d",
				s.nodeID, event.MessageId, ack.ResponderId, ack.Timestamp)

			mu.Lock()
			acks++
			mu.Unlock()
		}(peer)
	}

	wg.Wait()
	return acks
}

// History handles History requests, returning the journal in Lamport
// total order. Since filters to entries with a strictly greater
// timestamp.
func (s *Server) History(ctx context.Context, req *chatmeshpb.HistoryRequest) (*chatmeshpb.HistoryResponse, error) {
	entries := s.journal.Since(clock.LamportTime(req.Since))
	return &chatmeshpb.HistoryResponse{
		Events: entriesToProto(entries),
	}, nil
}

// Clock handles diagnostic clock reads.
func (s *Server) Clock(ctx context.Context, req *chatmeshpb.ClockRequest) (*chatmeshpb.ClockResponse, error) {
	return &chatmeshpb.ClockResponse{
		NodeId: s.nodeID,
		Time:   uint64(s.clock.Time()),
	}, nil
}
