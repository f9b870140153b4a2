package main

import (
	"fmt"
	"os"

	// Packages
	prism "github.com/mutablelogic/go-prism"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type AskCmd struct {
	Prompt        string `arg:"" help:"Prompt to send"`
	Stream        bool   `help:"Stream the reply as it is generated"`
	Conversation  int64  `help:"Conversation identifier"`
	KnowledgeBase string `help:"Scope the reply to a named knowledge base"`
	MaxTokens     uint   `help:"Maximum number of tokens to generate"`
	NumResults    uint   `help:"Number of knowledge results to use"`
	Model         string `help:"Model to generate the reply with"`
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (cmd *AskCmd) Run(globals *Globals) error {
	client, err := globals.Client()
	if err != nil {
		return err
	}

	// Reply options
	opts := []prism.Opt{}
	if cmd.Conversation != 0 {
		opts = append(opts, prism.WithConversation(cmd.Conversation))
	}
	if cmd.KnowledgeBase != "" {
		opts = append(opts, prism.WithKnowledgeBase(cmd.KnowledgeBase))
	}
	if cmd.MaxTokens > 0 {
		opts = append(opts, prism.WithMaxTokens(cmd.MaxTokens))
	}
	if cmd.NumResults > 0 {
		opts = append(opts, prism.WithNumResults(cmd.NumResults))
	}
	if cmd.Model != "" {
		opts = append(opts, prism.WithModel(cmd.Model))
	}

	// Streamed reply, printed chunk by chunk
	if cmd.Stream {
		stream, err := client.Replies.Stream(globals.ctx, cmd.Prompt, opts...)
		if err != nil {
			return err
		}
		if err := stream.Text(func(chunk string) error {
			_, err := fmt.Fprint(os.Stdout, chunk)
			return err
		}); err != nil {
			return err
		}
		fmt.Println()
		return nil
	}

	// Buffered reply
	reply, err := client.Replies.Create(globals.ctx, cmd.Prompt, opts...)
	if err != nil {
		return err
	}
	fmt.Println(reply)
	return nil
}
