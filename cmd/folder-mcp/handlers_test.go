package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taigrr/folder-mcp/internal/listfile"
	"github.com/taigrr/folder-mcp/internal/types"
	"github.com/taigrr/folder-mcp/internal/workspace"
)

func setupSession(t *testing.T) *mcp.ClientSession {
	t.Helper()

	ws, err := workspace.New(types.List{
		{ID: "f1", Name: "Inbox", Files: []types.File{
			{ID: "a", Name: "a.txt"},
			{ID: "b", Name: "b.txt"},
		}},
		{ID: "f2", Name: "Archive", Files: []types.File{}},
	}, nil)
	require.NoError(t, err)
	folderWorkspace = ws

	ctx := context.Background()
	serverTransport, clientTransport := mcp.NewInMemoryTransports()

	serverSession, err := newServer().Connect(ctx, serverTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { serverSession.Close() })

	client := mcp.NewClient(&mcp.Implementation{Name: "test-client", Version: "v0.0.1"}, nil)
	session, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { session.Close() })

	return session
}

func callTool[T any](t *testing.T, session *mcp.ClientSession, name string, args map[string]any) (T, *mcp.CallToolResult) {
	t.Helper()

	var out T
	res, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      name,
		Arguments: args,
	})
	require.NoError(t, err)
	if res.StructuredContent == nil {
		return out, res
	}

	raw, err := json.Marshal(res.StructuredContent)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &out))
	return out, res
}

func errorText(res *mcp.CallToolResult) string {
	var parts []string
	for _, c := range res.Content {
		if text, ok := c.(*mcp.TextContent); ok {
			parts = append(parts, text.Text)
		}
	}
	return strings.Join(parts, "\n")
}

func TestHandleMove(t *testing.T) {
	t.Run("moves file", func(t *testing.T) {
		session := setupSession(t)

		out, res := callTool[MoveOutput](t, session, "move", map[string]any{"source": "a", "destination": "f2"})
		require.False(t, res.IsError, errorText(res))
		assert.True(t, out.Success)
		assert.Equal(t, "a", out.Source)

		list, res := callTool[ListOutput](t, session, "list", map[string]any{})
		require.False(t, res.IsError, errorText(res))
		assert.Equal(t, 2, list.FileCount)
		assert.Equal(t, []types.File{{ID: "b", Name: "b.txt"}}, list.Folders[0].Files)
		assert.Equal(t, []types.File{{ID: "a", Name: "a.txt"}}, list.Folders[1].Files)
	})

	t.Run("reports failure kind", func(t *testing.T) {
		session := setupSession(t)

		out, res := callTool[MoveOutput](t, session, "move", map[string]any{"source": "f1", "destination": "f2"})
		require.True(t, res.IsError)
		assert.Contains(t, errorText(res), "InvalidSource")
		assert.False(t, out.Success)
		assert.Equal(t, "InvalidSource", out.Kind)
	})

	t.Run("already in destination leaves list unchanged", func(t *testing.T) {
		session := setupSession(t)

		_, res := callTool[MoveOutput](t, session, "move", map[string]any{"source": "a", "destination": "f1"})
		require.True(t, res.IsError)
		assert.Contains(t, errorText(res), "AlreadyInDestination")

		list, _ := callTool[ListOutput](t, session, "list", map[string]any{})
		assert.Len(t, list.Folders[0].Files, 2)
	})
}

func TestHandleList(t *testing.T) {
	session := setupSession(t)

	out, res := callTool[ListOutput](t, session, "list", map[string]any{"folderId": "f2"})
	require.False(t, res.IsError, errorText(res))
	require.Len(t, out.Folders, 1)
	assert.Equal(t, "Archive", out.Folders[0].Name)

	_, res = callTool[ListOutput](t, session, "list", map[string]any{"folderId": "nope"})
	assert.True(t, res.IsError)
}

func TestHandleLocate(t *testing.T) {
	session := setupSession(t)

	out, res := callTool[LocateOutput](t, session, "locate", map[string]any{"id": "b"})
	require.False(t, res.IsError, errorText(res))
	assert.Equal(t, types.KindFile, out.Kind)
	assert.Equal(t, "f1", out.FolderID)
	require.NotNil(t, out.FileIndex)
	assert.Equal(t, 1, *out.FileIndex)

	first, res := callTool[LocateOutput](t, session, "locate", map[string]any{"id": "a"})
	require.False(t, res.IsError, errorText(res))
	require.NotNil(t, first.FileIndex)
	assert.Equal(t, 0, *first.FileIndex)

	folder, res := callTool[LocateOutput](t, session, "locate", map[string]any{"id": "f2"})
	require.False(t, res.IsError, errorText(res))
	assert.Equal(t, types.KindFolder, folder.Kind)
	assert.Nil(t, folder.FileIndex)

	_, res = callTool[LocateOutput](t, session, "locate", map[string]any{"id": "zzz"})
	assert.True(t, res.IsError)
}

func TestHandleSearch(t *testing.T) {
	session := setupSession(t)

	out, res := callTool[SearchOutput](t, session, "search", map[string]any{"query": ".TXT"})
	require.False(t, res.IsError, errorText(res))
	require.Len(t, out.Results, 2)
	assert.Equal(t, "a", out.Results[0].ID)

	_, res = callTool[SearchOutput](t, session, "search", map[string]any{"query": " "})
	assert.True(t, res.IsError)
}

func TestMoveCommand(t *testing.T) {
	t.Setenv("FOLDER_MCP_LOG_LEVEL", "error")
	path := filepath.Join(t.TempDir(), "list.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
- id: f1
  name: Inbox
  files:
    - {id: a, name: a.txt}
- id: f2
  name: Archive
`), 0o644))

	run := func(args ...string) (string, error) {
		var stdout, stderr bytes.Buffer
		cmd := newRootCmd()
		cmd.SetOut(&stdout)
		cmd.SetErr(&stderr)
		cmd.SetArgs(args)
		err := cmd.Execute()
		return stdout.String(), err
	}

	t.Run("prints yaml", func(t *testing.T) {
		out, err := run("move", path, "a", "f2")
		require.NoError(t, err)
		assert.Contains(t, out, "id: f2")

		list, err := listfile.New().Parse([]byte(out))
		require.NoError(t, err)
		assert.Empty(t, list[0].Files)
		assert.Equal(t, "a", list[1].Files[0].ID)
	})

	t.Run("prints json", func(t *testing.T) {
		out, err := run("move", "--json", path, "a", "f2")
		require.NoError(t, err)

		var list types.List
		require.NoError(t, json.Unmarshal([]byte(out), &list))
		assert.Equal(t, "a", list[1].Files[0].ID)
	})

	t.Run("failure returns error", func(t *testing.T) {
		_, err := run("move", path, "x", "f2")
		assert.ErrorContains(t, err, "Source file not found: x")
	})

	t.Run("list file is not rewritten", func(t *testing.T) {
		_, err := run("move", path, "a", "f2")
		require.NoError(t, err)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), "{id: a, name: a.txt}")
	})
}
