package it

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	chatmeshpb "chatmesh/internal/gen/api"
)

func TestSmoke_PublishHistoryClock(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	binaryPath := "./chatmesh"
	if _, err := os.Stat(binaryPath); os.IsNotExist(err) {
		t.Skip("Binary not found, skipping integration test. Build with: go build -o chatmesh ./cmd/chatmesh")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	cluster, err := NewCluster(binaryPath)
	require.NoError(t, err)
	defer cluster.Stop()

	require.NoError(t, cluster.StartMesh(ctx, 3, 2), "Failed to start mesh")

	node1 := cluster.GetNode("n1")
	require.NotNil(t, node1)
	client := node1.GetClient()

	// Publish on n1: fan-out is synchronous, so by the time the call
	// returns every live peer has merged the timestamp.
	pubCtx, pubCancel := context.WithTimeout(ctx, 10*time.Second)
	pubResp, err := client.Publish(pubCtx, &chatmeshpb.PublishRequest{
		Body:     []byte("hello mesh"),
		ClientId: "test-client",
	})
	pubCancel()
	require.NoError(t, err)
	assert.Equal(t, chatmeshpb.PublishResponse_SUCCESS, pubResp.Status)
	assert.NotEmpty(t, pubResp.MessageId)
	assert.GreaterOrEqual(t, pubResp.Timestamp, uint64(1))
	assert.Equal(t, uint32(2), pubResp.Delivered, "Expected acks from both peers")

	// The message shows up in n2's history with the send timestamp.
	node2 := cluster.GetNode("n2")
	require.NotNil(t, node2)

	histCtx, histCancel := context.WithTimeout(ctx, 10*time.Second)
	histResp, err := node2.GetClient().History(histCtx, &chatmeshpb.HistoryRequest{})
	histCancel()
	require.NoError(t, err)
	require.Len(t, histResp.Events, 1)
	assert.Equal(t, pubResp.MessageId, histResp.Events[0].MessageId)
	assert.Equal(t, "n1", histResp.Events[0].OriginId)
	assert.Equal(t, pubResp.Timestamp, histResp.Events[0].Timestamp)
	assert.Equal(t, "hello mesh", string(histResp.Events[0].Body))

	// n2's clock witnessed the send, so it reads strictly later.
	clockCtx, clockCancel := context.WithTimeout(ctx, 10*time.Second)
	clockResp, err := node2.GetClient().Clock(clockCtx, &chatmeshpb.ClockRequest{})
	clockCancel()
	require.NoError(t, err)
	assert.Greater(t, clockResp.Time, pubResp.Timestamp)

	// A message published on n2 after the receive carries a strictly
	// later timestamp than the one it received.
	pub2Ctx, pub2Cancel := context.WithTimeout(ctx, 10*time.Second)
	pub2Resp, err := node2.GetClient().Publish(pub2Ctx, &chatmeshpb.PublishRequest{
		Body:     []byte("reply"),
		ClientId: "test-client",
	})
	pub2Cancel()
	require.NoError(t, err)
	assert.Equal(t, chatmeshpb.PublishResponse_SUCCESS, pub2Resp.Status)
	assert.Greater(t, pub2Resp.Timestamp, pubResp.Timestamp)

	// n1 sees both messages in Lamport order.
	hist1Ctx, hist1Cancel := context.WithTimeout(ctx, 10*time.Second)
	hist1Resp, err := client.History(hist1Ctx, &chatmeshpb.HistoryRequest{})
	hist1Cancel()
	require.NoError(t, err)
	require.Len(t, hist1Resp.Events, 2)
	assert.Equal(t, pubResp.MessageId, hist1Resp.Events[0].MessageId)
	assert.Equal(t, pub2Resp.MessageId, hist1Resp.Events[1].MessageId)
}

func TestSmoke_EmptyBodyRejected(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	binaryPath := "./chatmesh"
	if _, err := os.Stat(binaryPath); os.IsNotExist(err) {
		t.Skip("Binary not found, skipping integration test")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
	defer cancel()

	cluster, err := NewCluster(binaryPath)
	require.NoError(t, err)
	defer cluster.Stop()

	require.NoError(t, cluster.StartMesh(ctx, 1, 0))

	node1 := cluster.GetNode("n1")
	require.NotNil(t, node1)

	pubCtx, pubCancel := context.WithTimeout(ctx, 10*time.Second)
	resp, err := node1.GetClient().Publish(pubCtx, &chatmeshpb.PublishRequest{
		ClientId: "test-client",
	})
	pubCancel()
	require.NoError(t, err)
	assert.Equal(t, chatmeshpb.PublishResponse_ERROR, resp.Status)
	assert.NotEmpty(t, resp.ErrorMessage)
}

func TestMesh_ToleratesPeerDown(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	binaryPath := "./chatmesh"
	if _, err := os.Stat(binaryPath); os.IsNotExist(err) {
		t.Skip("Binary not found, skipping integration test")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
	defer cancel()

	cluster, err := NewCluster(binaryPath)
	require.NoError(t, err)
	defer cluster.Stop()

	// Best-effort delivery: no ack quorum.
	require.NoError(t, cluster.StartMesh(ctx, 3, 0))

	require.NoError(t, cluster.KillNode("n3"))

	node1 := cluster.GetNode("n1")
	require.NotNil(t, node1)

	pubCtx, pubCancel := context.WithTimeout(ctx, 15*time.Second)
	pubResp, err := node1.GetClient().Publish(pubCtx, &chatmeshpb.PublishRequest{
		Body:     []byte("still here"),
		ClientId: "test-client",
	})
	pubCancel()
	require.NoError(t, err)
	assert.Equal(t, chatmeshpb.PublishResponse_SUCCESS, pubResp.Status)
	assert.Equal(t, uint32(1), pubResp.Delivered, "Expected ack from the surviving peer only")

	// The surviving peer recorded the message.
	node2 := cluster.GetNode("n2")
	require.NotNil(t, node2)

	histCtx, histCancel := context.WithTimeout(ctx, 10*time.Second)
	histResp, err := node2.GetClient().History(histCtx, &chatmeshpb.HistoryRequest{})
	histCancel()
	require.NoError(t, err)
	require.Len(t, histResp.Events, 1)
	assert.Equal(t, pubResp.MessageId, histResp.Events[0].MessageId)
}
