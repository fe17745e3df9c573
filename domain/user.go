// Package domain contains core concepts of the chat relay.
// This file defines User and the results reported by the registry.
package domain

import "github.com/samber/lo"

// User is a logged-in nickname and the channels it joined, in join order.
type User struct {
	Nickname       string
	JoinedChannels []string
}

func NewUser(nickname string) *User {
	return &User{Nickname: nickname, JoinedChannels: []string{}}
}

func (u *User) HasJoined(channel string) bool {
	return lo.Contains(u.JoinedChannels, channel)
}

func (u *User) AddChannel(channel string) {
	u.JoinedChannels = append(u.JoinedChannels, channel)
}

func (u *User) RemoveChannel(channel string) {
	u.JoinedChannels = lo.Without(u.JoinedChannels, channel)
}

// LoginResult describes how a requested nickname was resolved.
type LoginResult struct {
	Nickname string
	// Taken is set when the requested nickname was already registered.
	Taken bool
	// Generated is set when a random nickname was substituted.
	Generated bool
}

type RegistryStats struct {
	Users    int
	Channels int
}
