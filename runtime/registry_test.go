package runtime

import (
	"chat-relay/domain"
	"chat-relay/errors"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var randomNickname = regexp.MustCompile(`^user\d+$`)

func TestRegistry_Login_Free_Nickname(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry(DefaultMaxRandomSuffix)

	for _, nickname := range []string{"alice", "bob", "Alice"} {
		// When a free nickname is requested
		result := registry.Login(nickname)

		// Then exactly that nickname is assigned
		req.Equal(nickname, result.Nickname)
		req.False(result.Taken)
		req.False(result.Generated)
		req.True(registry.IsRegistered(nickname))
	}
	req.Equal(3, registry.Stats().Users)
}

func TestRegistry_Login_Taken_Nickname(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry(DefaultMaxRandomSuffix)

	// Given alice is already logged in
	registry.Login("alice")

	// When another login asks for alice
	result := registry.Login("alice")

	// Then a random nickname is substituted
	req.True(result.Taken)
	req.True(result.Generated)
	req.NotEqual("alice", result.Nickname)
	req.Regexp(randomNickname, result.Nickname)
	req.Equal(2, registry.Stats().Users)
}

func TestRegistry_Login_Empty_Nickname(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry(DefaultMaxRandomSuffix)

	result := registry.Login("")

	req.False(result.Taken)
	req.True(result.Generated)
	req.Regexp(randomNickname, result.Nickname)
	req.False(registry.IsRegistered(""))
}

func TestRegistry_Login_Random_Nickname_Avoids_Collision(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry(10)
	draws := []int{1, 1, 2}
	registry.intN = func(n int) int {
		req.Equal(10, n)
		next := draws[0]
		draws = draws[1:]
		return next
	}

	// Given user1 is registered
	registry.Login("user1")

	// When a random nickname is drawn twice on user1 and then user2
	result := registry.Login("")

	// Then the colliding draw is skipped
	req.Equal("user2", result.Nickname)
	req.Empty(draws)
}

func TestRegistry_Login_Exhausted_Random_Space(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry(1)

	// Given the only random nickname is already taken
	first := registry.Login("")
	req.Equal("user0", first.Nickname)

	// When another login needs a random nickname
	done := make(chan domain.LoginResult, 1)
	go func() { done <- registry.Login("") }()

	// Then a free suffix past the range is assigned
	select {
	case second := <-done:
		req.True(second.Generated)
		req.Equal("user1", second.Nickname)
	case <-time.After(2 * time.Second):
		req.Fail("login never returned")
	}
	req.Equal(2, registry.Stats().Users)

	// And the scan skips suffixes already in use
	registry.Login("user2")
	req.Equal("user3", registry.Login("").Nickname)
}

func TestRegistry_Join_Twice(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry(DefaultMaxRandomSuffix)
	registry.Login("alice")

	// When alice joins general
	created, err := registry.Join("alice", "general")

	// Then the channel is created and alice is in it
	req.NoError(err)
	req.True(created)
	req.Equal([]string{"alice"}, registry.Members("general"))

	// When alice joins general again
	created, err = registry.Join("alice", "general")

	// Then it fails
	req.ErrorIs(err, errors.ErrAlreadyMember)
	req.EqualError(err, "you are already a member of #general")
	req.False(created)
	req.Equal([]string{"alice"}, registry.Members("general"))
}

func TestRegistry_Join_Existing_Channel(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry(DefaultMaxRandomSuffix)
	registry.Login("alice")
	registry.Login("bob")

	_, err := registry.Join("alice", "general")
	req.NoError(err)
	created, err := registry.Join("bob", "general")

	req.NoError(err)
	req.False(created)
	req.Equal([]string{"alice", "bob"}, registry.Members("general"))
}

func TestRegistry_Join_Not_Logged_In(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry(DefaultMaxRandomSuffix)

	_, err := registry.Join("ghost", "general")

	req.ErrorIs(err, errors.ErrNotLoggedIn)
	req.Nil(registry.Members("general"))
	req.Zero(registry.Stats().Channels)
}

func TestRegistry_Leave_Without_Join(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry(DefaultMaxRandomSuffix)
	registry.Login("alice")

	err := registry.Leave("alice", "general")

	req.ErrorIs(err, errors.ErrNotMember)
	req.EqualError(err, "you are not a member of #general")
}

func TestRegistry_Leave_Keeps_Both_Sides_In_Sync(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry(DefaultMaxRandomSuffix)
	registry.Login("alice")
	registry.Login("bob")
	_, _ = registry.Join("alice", "general")
	_, _ = registry.Join("alice", "random")
	_, _ = registry.Join("bob", "general")

	// When alice leaves general
	req.NoError(registry.Leave("alice", "general"))

	// Then both the user and the channel forget the membership
	channels, err := registry.JoinedChannels("alice")
	req.NoError(err)
	req.Equal([]string{"random"}, channels)
	req.Equal([]string{"bob"}, registry.Members("general"))
}

func TestRegistry_Leave_Last_Member_Drops_Channel(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry(DefaultMaxRandomSuffix)
	registry.Login("alice")
	created, _ := registry.Join("alice", "general")
	req.True(created)

	req.NoError(registry.Leave("alice", "general"))

	req.Nil(registry.Members("general"))
	req.Zero(registry.Stats().Channels)

	// And joining again creates it anew
	created, err := registry.Join("alice", "general")
	req.NoError(err)
	req.True(created)
}

func TestRegistry_Logout_Removes_Memberships(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry(DefaultMaxRandomSuffix)
	registry.Login("alice")
	registry.Login("bob")
	_, _ = registry.Join("alice", "general")
	_, _ = registry.Join("alice", "random")
	_, _ = registry.Join("bob", "general")

	// When alice logs out
	left := registry.Logout("alice")

	// Then she is gone from every channel she had joined
	req.Equal([]string{"general", "random"}, left)
	req.False(registry.IsRegistered("alice"))
	req.Equal([]string{"bob"}, registry.Members("general"))
	req.Nil(registry.Members("random"))
	req.Equal(1, registry.Stats().Channels)

	_, err := registry.JoinedChannels("alice")
	req.ErrorIs(err, errors.ErrNotLoggedIn)
}

func TestRegistry_Logout_Unknown_Nickname(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry(DefaultMaxRandomSuffix)

	req.Nil(registry.Logout("ghost"))
	req.Zero(registry.Stats().Users)
}

func TestRegistry_JoinedChannels_Returns_Copy(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry(DefaultMaxRandomSuffix)
	registry.Login("alice")
	_, _ = registry.Join("alice", "general")

	channels, err := registry.JoinedChannels("alice")
	req.NoError(err)
	channels[0] = "mutated"

	again, _ := registry.JoinedChannels("alice")
	req.Equal([]string{"general"}, again)
}
