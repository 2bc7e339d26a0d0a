package main

import (
	"fmt"

	"lms/internal/shell"
)

type ChatCmd struct {
	URL   string `help:"Chatbot page to embed (defaults to chat_url from settings)"`
	Close bool   `help:"Close the chat panel instead of opening it"`
}

func (cmd *ChatCmd) Run(g *Globals) error {
	chat := &shell.Chat{BaseURL: g.settings().ChatURL}
	if g.State != nil {
		chat = &g.State.Chat
	}

	if cmd.Close {
		chat.Close()
		fmt.Fprintln(g.Out, "Chat closed")
		return nil
	}

	if cmd.URL != "" {
		chat.BaseURL = cmd.URL
	}

	embed, err := chat.EmbedURL()
	if err != nil {
		return err
	}
	chat.Open()
	g.logger().Debug("chat opened", "url", embed, "open", chat.IsOpen())
	fmt.Fprintln(g.Out, embed)
	return nil
}
