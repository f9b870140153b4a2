package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	// Packages
	kong "github.com/alecthomas/kong"
	client "github.com/mutablelogic/go-client"
	prism "github.com/mutablelogic/go-prism"
	version "github.com/mutablelogic/go-prism/pkg/version"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type Globals struct {
	// Debugging
	Debug   bool `name:"debug" help:"Enable debug output"`
	Verbose bool `name:"verbose" help:"Enable verbose output"`

	// Credential and endpoint
	Key string `env:"PRISM_API_KEY" help:"Prism API key"`
	Url string `env:"PRISM_URL" help:"Override the API endpoint"`

	// Context
	ctx    context.Context
	client *prism.Client
}

type CLI struct {
	Globals

	// Knowledge bases
	CreateKb CreateKnowledgeBaseCmd `cmd:"" name:"create-kb" help:"Create a knowledge base"`
	GetKb    GetKnowledgeBaseCmd    `cmd:"" name:"get-kb" help:"Get a knowledge base and its knowledge items"`
	DeleteKb DeleteKnowledgeBaseCmd `cmd:"" name:"delete-kb" help:"Delete a knowledge base"`

	// Knowledge items
	AddUrl          AddURLCmd          `cmd:"" name:"add-url" help:"Ingest a URL into a knowledge base"`
	AddText         AddTextCmd         `cmd:"" name:"add-text" help:"Ingest raw text into a knowledge base"`
	GetKnowledge    GetKnowledgeCmd    `cmd:"" name:"get-knowledge" help:"Get a knowledge item"`
	DeleteKnowledge DeleteKnowledgeCmd `cmd:"" name:"delete-knowledge" help:"Delete a knowledge item"`

	// Replies
	Ask AskCmd `cmd:"" help:"Submit a prompt and print the reply"`

	// Version
	Version VersionCmd `cmd:"" help:"Print version information"`
}

type VersionCmd struct{}

////////////////////////////////////////////////////////////////////////////////
// MAIN

func main() {
	// Create a cli parser
	cli := CLI{}
	cmd := kong.Parse(&cli,
		kong.Name(execName()),
		kong.Description("Prism AI command line interface"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
	)

	// Create a context
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	cli.Globals.ctx = ctx

	// Client options
	clientopts := []client.ClientOpt{}
	if cli.Debug || cli.Verbose {
		clientopts = append(clientopts, client.OptTrace(os.Stderr, cli.Verbose))
	}

	// Create the client when a credential is supplied; commands which need
	// it report the missing key themselves
	if cli.Key != "" {
		var err error
		if cli.Url != "" {
			cli.Globals.client, err = prism.NewWithEndpoint(cli.Url, cli.Key, clientopts...)
		} else {
			cli.Globals.client, err = prism.New(cli.Key, clientopts...)
		}
		cmd.FatalIfErrorf(err)
	}

	// Run the command
	if err := cmd.Run(&cli.Globals); err != nil {
		cmd.FatalIfErrorf(err)
		return
	}
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (*VersionCmd) Run(globals *Globals) error {
	for key, value := range version.Map(execName()) {
		fmt.Printf("%s: %s\n", key, value)
	}
	return nil
}

////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// Client returns the API client, or an error when no credential was supplied
func (g *Globals) Client() (*prism.Client, error) {
	if g.client == nil {
		return nil, prism.ErrBadParameter.With("missing API key, set PRISM_API_KEY")
	}
	return g.client, nil
}

func execName() string {
	// The name of the executable
	name, err := os.Executable()
	if err != nil {
		panic(err)
	}
	return filepath.Base(name)
}
