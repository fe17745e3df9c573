package test

import (
	"chat-relay/client"
	"chat-relay/domain"
	"chat-relay/moderation"
	"chat-relay/rpc"
	"chat-relay/runtime"
	"chat-relay/runtime/workers"
	"chat-relay/services"
	"chat-relay/transport/memory"
	"context"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

type relay struct {
	broker   *memory.Broker
	registry *runtime.Registry
	stop     func()
}

// startRelay runs the whole server side over an in-process broker.
func startRelay(t *testing.T, censored ...string) relay {
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	broker := memory.NewBroker(0)
	transport := broker.Server()
	moderator, err := moderation.NewModerator(censored, '*')
	require.NoError(t, err)

	registry := runtime.NewRegistry(runtime.DefaultMaxRandomSuffix)
	distributor := runtime.NewDistributor(log, registry, transport, moderator)
	dispatcher := services.NewDispatcher(log, registry, distributor)
	supervisor := workers.NewSupervisor(log, 50*time.Millisecond)
	supervisor.Add(
		rpc.NewServer(log, transport, dispatcher, nil),
		workers.NewHeartbeatWorker(log, registry, 20*time.Millisecond),
	)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- supervisor.Run(ctx) }()

	r := relay{broker: broker, registry: registry}
	r.stop = func() {
		cancel()
		require.NoError(t, <-done)
		_ = broker.Close()
	}
	t.Cleanup(r.stop)
	return r
}

func newClient(t *testing.T, r relay) (*rpc.Client, *memory.ClientTransport) {
	transport, err := r.broker.NewClient()
	require.NoError(t, err)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	return rpc.NewClient(log, transport, 2*time.Second), transport
}

func call(t *testing.T, c *rpc.Client, request domain.Request) domain.Response {
	resp, err := c.Call(context.Background(), request)
	require.NoError(t, err)
	return resp
}

func receive(t *testing.T, queue <-chan []byte) string {
	select {
	case body := <-queue:
		return string(body)
	case <-time.After(time.Second):
		require.Fail(t, "no message pushed")
		return ""
	}
}

func Test_Scenario(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	r := startRelay(t)
	alice, aliceTransport := newClient(t, r)
	bob, bobTransport := newClient(t, r)

	// 1. Login, the second alice gets a generated nickname
	resp := call(t, alice, domain.Request{Command: "NICK", Nickname: "alice"})
	req.True(resp.Status)
	req.Equal("alice", resp.Nickname)

	resp = call(t, bob, domain.Request{Command: "nick", Nickname: "alice"})
	req.True(resp.Status)
	req.Regexp(`^user\d+$`, resp.Nickname)
	req.Contains(resp.Message, "already exists")
	resp = call(t, bob, domain.Request{Command: "LOGOUT", Nickname: resp.Nickname})
	req.True(resp.Status)
	resp = call(t, bob, domain.Request{Command: "NICK", Nickname: "bob"})
	req.Equal("bob", resp.Nickname)

	// 2. Both join general and subscribe to their nickname
	resp = call(t, alice, domain.Request{Command: "JOIN", Nickname: "alice", ChannelName: "general"})
	req.True(resp.Status)
	req.Contains(resp.Message, "created new channel #general")
	resp = call(t, bob, domain.Request{Command: "JOIN", Nickname: "bob", ChannelName: "general"})
	req.Equal("#general joined successfully", resp.Message)

	aliceQueue, err := aliceTransport.Subscribe(ctx, "alice")
	req.NoError(err)
	bobQueue, err := bobTransport.Subscribe(ctx, "bob")
	req.NoError(err)

	// 3. alice sends, both members receive it, the sender included
	resp = call(t, alice, domain.Request{Command: "SEND", Nickname: "alice", ChannelName: "general", Message: "hello"})
	req.True(resp.Status)
	req.Equal("@general alice: hello", receive(t, aliceQueue))
	req.Equal("@general alice: hello", receive(t, bobQueue))

	// 4. bob leaves, then misses the next message
	resp = call(t, bob, domain.Request{Command: "LEAVE", Nickname: "bob", ChannelName: "general"})
	req.True(resp.Status)
	resp = call(t, alice, domain.Request{Command: "BROADCAST", Nickname: "alice", Message: "anyone?"})
	req.True(resp.Status)
	req.Equal("@general alice: anyone?", receive(t, aliceQueue))
	req.Len(bobQueue, 0)

	// 5. A member that left can neither send there nor broadcast without channels
	resp = call(t, bob, domain.Request{Command: "SEND", Nickname: "bob", ChannelName: "general", Message: "hi"})
	req.False(resp.Status)
	req.Equal("you are not a member of #general", resp.Message)
	resp = call(t, bob, domain.Request{Command: "BROADCAST", Nickname: "bob", Message: "hi"})
	req.False(resp.Status)

	// 6. alice logs out, her membership is gone and the empty channel too
	resp = call(t, alice, domain.Request{Command: "LOGOUT", Nickname: "alice"})
	req.True(resp.Status)
	req.Nil(r.registry.Members("general"))
	req.Equal(domain.RegistryStats{Users: 1, Channels: 0}, r.registry.Stats())

	// 7. A second login under the same nickname starts clean
	resp = call(t, alice, domain.Request{Command: "NICK", Nickname: "alice"})
	req.Equal("alice", resp.Nickname)
	channels, err := r.registry.JoinedChannels("alice")
	req.NoError(err)
	req.Empty(channels)
}

func Test_Malformed_Request_Keeps_Serving(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	r := startRelay(t)
	transport, err := r.broker.NewClient()
	req.NoError(err)

	// Given a raw payload that is not JSON
	req.NoError(transport.Send(ctx, "raw-1", []byte("not json")))

	select {
	case reply := <-transport.Replies():
		req.Equal("raw-1", reply.CorrelationID)
		req.JSONEq(`{"status":false,"message":"could not process message"}`, string(reply.Body))
	case <-time.After(time.Second):
		req.Fail("no reply")
	}

	// Then the loop still answers
	c := rpc.NewClient(logs.GetLoggerFromLevel(slog.LevelDebug), transport, time.Second)
	resp, err := c.Call(ctx, domain.Request{Command: "NICK", Nickname: "alice"})
	req.NoError(err)
	req.True(resp.Status)
}

func Test_Moderated_Message(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	r := startRelay(t, "badger")
	alice, aliceTransport := newClient(t, r)

	call(t, alice, domain.Request{Command: "NICK", Nickname: "alice"})
	call(t, alice, domain.Request{Command: "JOIN", Nickname: "alice", ChannelName: "general"})
	queue, err := aliceTransport.Subscribe(ctx, "alice")
	req.NoError(err)

	call(t, alice, domain.Request{Command: "SEND", Nickname: "alice", ChannelName: "general", Message: "the b4dger is here"})

	req.Equal("@general alice: the ****** is here", receive(t, queue))
}

// output is shared between a session and its relay goroutine.
type output struct {
	mu  sync.Mutex
	buf strings.Builder
}

func (o *output) Write(p []byte) (int, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.buf.Write(p)
}

func (o *output) String() string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.buf.String()
}

func newSession(t *testing.T, r relay) (*client.Session, *output) {
	c, transport := newClient(t, r)
	out := &output{}
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	return client.NewSession(log, c, transport, client.NewRenderer(out, false)), out
}

func execute(t *testing.T, s *client.Session, lines ...string) {
	for _, line := range lines {
		_, err := s.Execute(context.Background(), line)
		require.NoError(t, err)
	}
}

func Test_Sessions_Chat(t *testing.T) {
	req := require.New(t)
	r := startRelay(t)
	alice, aliceOut := newSession(t, r)
	bob, bobOut := newSession(t, r)

	execute(t, alice, "NICK alice", "JOIN general")
	execute(t, bob, "NICK bob", "JOIN general", "@general hello alice")

	req.Eventually(func() bool {
		return strings.Contains(aliceOut.String(), "@general bob: hello alice") &&
			strings.Contains(bobOut.String(), "@general bob: hello alice")
	}, time.Second, 10*time.Millisecond)

	// Local checks happen before any request
	execute(t, alice, "NICK again")
	req.Contains(aliceOut.String(), "! please logout first")

	// EXIT logs out on the server
	exit, err := alice.Execute(context.Background(), "EXIT")
	req.NoError(err)
	req.True(exit)
	req.False(r.registry.IsRegistered("alice"))
	req.Equal([]string{"bob"}, r.registry.Members("general"))
}
