// Package domain contains core concepts of the chat relay.
// This file defines Message, the transient value being distributed.
// Messages are never stored.
package domain

import "fmt"

// Message is what a sender wants delivered to a channel.
type Message struct {
	Sender string
	Text   string
}

// Display renders the message the way members receive it on their routing key.
func (m Message) Display(channel string) string {
	return fmt.Sprintf("@%s %s: %s", channel, m.Sender, m.Text)
}
