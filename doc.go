/*
Package minerva is a menu-driven conversational assistant for the Centro de Formación Minerva.

A client sends a user identifier and a text message; the bot looks up the node
the user is positioned at in a fixed tree of menu nodes, matches the message
against that node's options and answers with the next node's message.

# Concept

The menu is an immutable graph loaded once at startup (the built-in catalog or
a YAML/JSON file). The only mutable state is the Session of each user: the ID of
the node they are currently at. Users without a session start at "inicio".
Unrecognized messages never move the user; they re-prompt the current node.

Sessions are not locked. Two overlapping messages from the same user may both be
evaluated from the same node and the last write wins.

# Usage

	package main

	import (
		"context"
		"fmt"
		"log"

		"github.com/aretw0/minerva"
	)

	func main() {
		bot, err := minerva.New()
		if err != nil {
			log.Fatal(err)
		}

		reply, err := bot.Reply(context.Background(), "u1", "1")
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(reply.State) // sociosanitario
		fmt.Println(reply.Response)
	}
*/
package minerva
