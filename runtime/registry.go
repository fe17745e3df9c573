package runtime

import (
	"chat-relay/domain"
	"chat-relay/errors"
	"fmt"
	"math/rand/v2"
	"sort"
	"strconv"
	"sync"

	"github.com/samber/lo"
)

const (
	randomNicknamePrefix   = "user"
	DefaultMaxRandomSuffix = 99999
	maxRandomDraws         = 16
)

type Set map[string]struct{}

// Registry owns the logged-in users and the channel member sets.
// Every mutation touches both sides under the same lock so that
// nickname ∈ members(channel) ⇔ channel ∈ user.JoinedChannels.
type Registry struct {
	mu             sync.RWMutex
	users          map[string]*domain.User
	channelMembers map[string]Set
	maxSuffix      int
	intN           func(n int) int
}

func NewRegistry(maxRandomSuffix int) *Registry {
	if maxRandomSuffix <= 0 {
		maxRandomSuffix = DefaultMaxRandomSuffix
	}
	return &Registry{
		users:          make(map[string]*domain.User),
		channelMembers: make(map[string]Set),
		maxSuffix:      maxRandomSuffix,
		intN:           rand.IntN,
	}
}

// Login registers a user under the requested nickname. An empty or already
// registered nickname is replaced by a random `user<N>` one, so login never fails.
func (r *Registry) Login(requested string) domain.LoginResult {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, taken := r.users[requested]
	result := domain.LoginResult{Nickname: requested, Taken: taken}
	if requested == "" || taken {
		result.Nickname = r.randomNickname()
		result.Generated = true
	}
	r.users[result.Nickname] = domain.NewUser(result.Nickname)
	return result
}

// randomNickname must be called with the lock held. After a few colliding
// draws it scans for the lowest free suffix, past maxSuffix if need be.
func (r *Registry) randomNickname() string {
	for range maxRandomDraws {
		candidate := randomNicknamePrefix + strconv.Itoa(r.intN(r.maxSuffix))
		if _, ok := r.users[candidate]; !ok {
			return candidate
		}
	}
	for suffix := 0; ; suffix++ {
		candidate := randomNicknamePrefix + strconv.Itoa(suffix)
		if _, ok := r.users[candidate]; !ok {
			return candidate
		}
	}
}

// Logout removes the user and takes it out of every channel it had joined.
// Channels left empty are dropped. It returns the channels that were left.
func (r *Registry) Logout(nickname string) []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[nickname]
	if !ok {
		return nil
	}
	for _, channel := range user.JoinedChannels {
		r.removeMember(channel, nickname)
	}
	delete(r.users, nickname)
	return user.JoinedChannels
}

func (r *Registry) IsRegistered(nickname string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.users[nickname]
	return ok
}

// Join adds the user to the channel, creating the channel on first use.
// The returned bool reports whether the channel was created by this call.
func (r *Registry) Join(nickname, channel string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[nickname]
	if !ok {
		return false, errors.ErrNotLoggedIn
	}
	if user.HasJoined(channel) {
		return false, fmt.Errorf("%w #%s", errors.ErrAlreadyMember, channel)
	}

	members, exists := r.channelMembers[channel]
	if !exists {
		members = make(Set)
		r.channelMembers[channel] = members
	}
	members[nickname] = struct{}{}
	user.AddChannel(channel)
	return !exists, nil
}

func (r *Registry) Leave(nickname, channel string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[nickname]
	if !ok {
		return errors.ErrNotLoggedIn
	}
	if !user.HasJoined(channel) {
		return fmt.Errorf("%w #%s", errors.ErrNotMember, channel)
	}
	user.RemoveChannel(channel)
	r.removeMember(channel, nickname)
	return nil
}

// removeMember must be called with the lock held.
func (r *Registry) removeMember(channel, nickname string) {
	members, ok := r.channelMembers[channel]
	if !ok {
		return
	}
	delete(members, nickname)
	if len(members) == 0 {
		delete(r.channelMembers, channel)
	}
}

// JoinedChannels returns a copy of the user's channels in join order.
func (r *Registry) JoinedChannels(nickname string) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[nickname]
	if !ok {
		return nil, errors.ErrNotLoggedIn
	}
	return append([]string(nil), user.JoinedChannels...), nil
}

// Members returns the nicknames in the channel, sorted. Nil for an unknown channel.
func (r *Registry) Members(channel string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	members, ok := r.channelMembers[channel]
	if !ok {
		return nil
	}
	nicknames := lo.Keys(members)
	sort.Strings(nicknames)
	return nicknames
}

func (r *Registry) Stats() domain.RegistryStats {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return domain.RegistryStats{Users: len(r.users), Channels: len(r.channelMembers)}
}
