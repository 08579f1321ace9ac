package node

import (
	"time"

	"chatmesh/internal/clock"
	chatmeshpb "chatmesh/internal/gen/api"
	"chatmesh/internal/journal"
)

// entryToProto converts a journal entry to its wire representation.
func entryToProto(e journal.Entry) *chatmeshpb.Event {
	return &chatmeshpb.Event{
		MessageId: e.ID,
		OriginId:  e.Origin,
		Timestamp: uint64(e.Timestamp),
		Body:      e.Body,
	}
}

// entriesToProto converts a slice of journal entries, preserving order.
func entriesToProto(entries []journal.Entry) []*chatmeshpb.Event {
	events := make([]*chatmeshpb.Event, 0, len(entries))
	for _, e := range entries {
		events = append(events, entryToProto(e))
	}
	return events
}

// protoToEntry converts a wire event to a journal entry.
func protoToEntry(ev *chatmeshpb.Event, received time.Time) journal.Entry {
	return journal.Entry{
		Timestamp: clock.LamportTime(ev.Timestamp),
		Origin:    ev.OriginId,
		ID:        ev.MessageId,
		Body:      ev.Body,
		Received:  received,
	}
}
