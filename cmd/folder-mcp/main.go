// Package main implements the MCP server for folder lists.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"
	"github.com/taigrr/folder-mcp/internal/config"
	"github.com/taigrr/folder-mcp/internal/listfile"
	"github.com/taigrr/folder-mcp/internal/types"
	"github.com/taigrr/folder-mcp/internal/workspace"
)

var folderWorkspace *workspace.Service

func main() {
	if err := fang.Execute(
		context.Background(),
		newRootCmd(),
		fang.WithVersion(version),
		fang.WithoutCompletions(),
		fang.WithoutManpage(),
	); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "folder-mcp [list-file]",
		Short: "MCP server for moving files between folders",
		Long: `folder-mcp is a Model Context Protocol (MCP) server that holds a
list of folders, each containing files, and lets any MCP-compatible
AI harness inspect the list and move files from one folder to another.

The list is read from a YAML or JSON file and kept in memory; it is
never written back.`,
		Example: `folder-mcp ./folders.yaml
FOLDER_MCP_LIST=./folders.yaml folder-mcp`,
		Args: cobra.MaximumNArgs(1),
		RunE: runServer,
	}
	cmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error (default from FOLDER_MCP_LOG_LEVEL or info)")

	cmd.AddCommand(newMoveCmd())
	return cmd
}

func newMoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "move <list-file> <source-id> <destination-id>",
		Short: "Move one file to another folder and print the resulting list",
		Example: `folder-mcp move ./folders.yaml report-1 archive
folder-mcp move --json ./folders.json report-1 archive`,
		Args: cobra.ExactArgs(3),
		RunE: runMove,
	}
	cmd.Flags().Bool("json", false, "Print the resulting list as JSON instead of YAML")
	return cmd
}

func newLogger(cmd *cobra.Command, cfg config.Config) (*slog.Logger, error) {
	name := cfg.LogLevel
	if flag, _ := cmd.Flags().GetString("log-level"); flag != "" {
		name = flag
	}
	level, err := config.ParseLevel(name)
	if err != nil {
		return nil, err
	}
	// stdout carries the MCP transport
	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})), nil
}

func runServer(cmd *cobra.Command, args []string) error {
	cfg, err := config.New()
	if err != nil {
		return err
	}
	logger, err := newLogger(cmd, cfg)
	if err != nil {
		return err
	}

	listPath := cfg.ListPath
	if len(args) > 0 {
		listPath = args[0]
	}

	if listPath != "" {
		folderWorkspace, err = workspace.Open(listPath, logger)
	} else {
		logger.Info("no list file given, starting with an empty list")
		folderWorkspace, err = workspace.New(nil, logger)
	}
	if err != nil {
		return err
	}

	server := newServer()
	if err := server.Run(cmd.Context(), &mcp.StdioTransport{}); err != nil {
		return fmt.Errorf("error running server: %w", err)
	}

	return nil
}

func newServer() *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "folder-mcp",
		Version: version,
	}, nil)

	registerTools(server)
	return server
}

func runMove(cmd *cobra.Command, args []string) error {
	cfg, err := config.New()
	if err != nil {
		return err
	}
	logger, err := newLogger(cmd, cfg)
	if err != nil {
		return err
	}

	ws, err := workspace.Open(args[0], logger)
	if err != nil {
		return err
	}

	result := ws.Move(types.MoveParams{SourceID: args[1], DestinationID: args[2]})
	if !result.Success {
		return fmt.Errorf("%s", result.Message)
	}

	asJSON, _ := cmd.Flags().GetBool("json")
	return printList(cmd, ws.List(), asJSON)
}

func printList(cmd *cobra.Command, list types.List, asJSON bool) error {
	out := cmd.OutOrStdout()
	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(list)
	}

	text, err := listfile.New().Stringify(list)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(out, text)
	return err
}
