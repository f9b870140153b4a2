package main

import (
	"fmt"
	"os"

	// Packages
	table "github.com/jedib0t/go-pretty/v6/table"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type CreateKnowledgeBaseCmd struct {
	Name string `arg:"" help:"Name of the knowledge base"`
}

type GetKnowledgeBaseCmd struct {
	Id   int64 `arg:"" help:"Knowledge base identifier"`
	Json bool  `help:"Output as JSON"`
}

type DeleteKnowledgeBaseCmd struct {
	Id int64 `arg:"" help:"Knowledge base identifier"`
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (cmd *CreateKnowledgeBaseCmd) Run(globals *Globals) error {
	client, err := globals.Client()
	if err != nil {
		return err
	}
	kb, err := client.KnowledgeBases.Create(globals.ctx, cmd.Name)
	if err != nil {
		return err
	}
	fmt.Println(kb)
	return nil
}

func (cmd *GetKnowledgeBaseCmd) Run(globals *Globals) error {
	client, err := globals.Client()
	if err != nil {
		return err
	}
	kb, err := client.KnowledgeBases.Get(globals.ctx, cmd.Id)
	if err != nil {
		return err
	}

	if cmd.Json {
		fmt.Println(kb)
		return nil
	}

	// Render the knowledge items as a table
	fmt.Printf("%s (id %d, owner %d)\n", kb.Name, kb.Id, kb.OwnerId)
	tw := table.NewWriter()
	tw.SetOutputMirror(os.Stdout)
	tw.AppendHeader(table.Row{"ID", "Name", "Available", "Created", "Updated"})
	for _, knowledge := range kb.Knowledges {
		tw.AppendRow(table.Row{knowledge.Id, knowledge.Name, knowledge.Available, knowledge.Created, knowledge.Updated})
	}
	tw.Render()
	return nil
}

func (cmd *DeleteKnowledgeBaseCmd) Run(globals *Globals) error {
	client, err := globals.Client()
	if err != nil {
		return err
	}
	message, err := client.KnowledgeBases.Delete(globals.ctx, cmd.Id)
	if err != nil {
		return err
	}
	fmt.Println(message)
	return nil
}
