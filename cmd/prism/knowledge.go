package main

import (
	"fmt"

	// Packages
	prism "github.com/mutablelogic/go-prism"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type AddURLCmd struct {
	Kb           int64  `arg:"" help:"Knowledge base identifier"`
	Name         string `arg:"" help:"Name for the knowledge item"`
	Url          string `arg:"" help:"URL to ingest"`
	Recursion    bool   `help:"Crawl pages linked from the URL"`
	MaxRecursion uint   `help:"Maximum crawl depth"`
	OnlyBaseUrl  bool   `help:"Restrict the crawl to the URL's origin"`
}

type AddTextCmd struct {
	Kb   int64  `arg:"" help:"Knowledge base identifier"`
	Name string `arg:"" help:"Name for the knowledge item"`
	Text string `arg:"" help:"Text to ingest"`
}

type GetKnowledgeCmd struct {
	Id int64 `arg:"" help:"Knowledge identifier"`
}

type DeleteKnowledgeCmd struct {
	Id int64 `arg:"" help:"Knowledge identifier"`
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (cmd *AddURLCmd) Run(globals *Globals) error {
	client, err := globals.Client()
	if err != nil {
		return err
	}

	// Crawl options
	opts := []prism.Opt{}
	if cmd.Recursion {
		opts = append(opts, prism.WithRecursion())
	}
	if cmd.MaxRecursion > 0 {
		opts = append(opts, prism.WithMaxRecursion(cmd.MaxRecursion))
	}
	if cmd.OnlyBaseUrl {
		opts = append(opts, prism.WithOnlyBaseURL())
	}

	kb, err := client.Knowledge.CreateFromURL(globals.ctx, cmd.Kb, cmd.Name, cmd.Url, opts...)
	if err != nil {
		return err
	}
	fmt.Println(kb)
	return nil
}

func (cmd *AddTextCmd) Run(globals *Globals) error {
	client, err := globals.Client()
	if err != nil {
		return err
	}
	kb, err := client.Knowledge.CreateFromText(globals.ctx, cmd.Kb, cmd.Name, cmd.Text)
	if err != nil {
		return err
	}
	fmt.Println(kb)
	return nil
}

func (cmd *GetKnowledgeCmd) Run(globals *Globals) error {
	client, err := globals.Client()
	if err != nil {
		return err
	}
	knowledge, err := client.Knowledge.Get(globals.ctx, cmd.Id)
	if err != nil {
		return err
	}
	fmt.Println(knowledge)
	return nil
}

func (cmd *DeleteKnowledgeCmd) Run(globals *Globals) error {
	client, err := globals.Client()
	if err != nil {
		return err
	}
	message, err := client.Knowledge.Delete(globals.ctx, cmd.Id)
	if err != nil {
		return err
	}
	fmt.Println(message)
	return nil
}
