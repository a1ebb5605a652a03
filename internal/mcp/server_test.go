package mcp_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/straygizmo/gocefrizer/internal/analyze"
	"github.com/straygizmo/gocefrizer/internal/mcp"
	"github.com/straygizmo/gocefrizer/internal/nlp"
	"github.com/straygizmo/gocefrizer/internal/resources"
)

func newTestServer(t *testing.T) *mcp.Server {
	t.Helper()
	ann, err := nlp.NewEnglish(nil)
	if err != nil {
		t.Fatalf("NewEnglish: %v", err)
	}
	store, err := resources.NewEmbedded(nil)
	if err != nil {
		t.Fatalf("NewEmbedded: %v", err)
	}
	return mcp.NewServer(analyze.New(ann, store, nil), "test")
}

func connectInMemory(t *testing.T, ctx context.Context, srv *mcp.Server) *sdkmcp.ClientSession {
	t.Helper()
	t1, t2 := sdkmcp.NewInMemoryTransports()
	if _, err := srv.MCPServer.Connect(ctx, t1, nil); err != nil {
		t.Fatalf("server.Connect: %v", err)
	}
	client := sdkmcp.NewClient(&sdkmcp.Implementation{Name: "test-client", Version: "v0.0.1"}, nil)
	session, err := client.Connect(ctx, t2, nil)
	if err != nil {
		t.Fatalf("client.Connect: %v", err)
	}
	return session
}

func callTool(t *testing.T, ctx context.Context, session *sdkmcp.ClientSession, name string, args map[string]any) map[string]any {
	t.Helper()
	res, err := session.CallTool(ctx, &sdkmcp.CallToolParams{
		Name:      name,
		Arguments: args,
	})
	if err != nil {
		t.Fatalf("CallTool(%s): %v", name, err)
	}
	if res.IsError {
		for _, c := range res.Content {
			if tc, ok := c.(*sdkmcp.TextContent); ok {
				t.Fatalf("CallTool(%s) returned error: %s", name, tc.Text)
			}
		}
		t.Fatalf("CallTool(%s) returned error", name)
	}
	result := make(map[string]any)
	for _, c := range res.Content {
		if tc, ok := c.(*sdkmcp.TextContent); ok {
			if err := json.Unmarshal([]byte(tc.Text), &result); err != nil {
				t.Fatalf("unmarshal tool result: %v (text: %s)", err, tc.Text)
			}
			return result
		}
	}
	t.Fatalf("no text content in tool result")
	return nil
}

func TestAnalyzeTextTool(t *testing.T) {
	ctx := context.Background()
	session := connectInMemory(t, ctx, newTestServer(t))
	defer session.Close()

	result := callTool(t, ctx, session, "analyze_text", map[string]any{
		"text": "The cat sat on the mat. The dog ran in the park.",
	})
	if result["CEFR-J_Level"] == "" {
		t.Errorf("missing CEFR-J_Level in %v", result)
	}
}

func TestAnalyzeTextTool_ShortTextErrors(t *testing.T) {
	ctx := context.Background()
	session := connectInMemory(t, ctx, newTestServer(t))
	defer session.Close()

	res, err := session.CallTool(ctx, &sdkmcp.CallToolParams{
		Name:      "analyze_text",
		Arguments: map[string]any{"text": "Too short."},
	})
	if err != nil {
		t.Fatalf("CallTool: %v", err)
	}
	if !res.IsError {
		t.Fatal("expected tool error for short text")
	}
}

func TestWordLevelTool(t *testing.T) {
	ctx := context.Background()
	session := connectInMemory(t, ctx, newTestServer(t))
	defer session.Close()

	result := callTool(t, ctx, session, "get_word_cefr_level", map[string]any{
		"word": "paradigm",
	})
	if result["CEFR_Level"] != "C1" {
		t.Errorf("CEFR_Level = %v, want C1", result["CEFR_Level"])
	}
}

func TestCheckWordLevelTool(t *testing.T) {
	ctx := context.Background()
	session := connectInMemory(t, ctx, newTestServer(t))
	defer session.Close()

	result := callTool(t, ctx, session, "check_word_level", map[string]any{
		"word": "paradigm", "level": "B1",
	})
	if within, ok := result["within_level"].(bool); !ok || within {
		t.Errorf("within_level = %v, want false", result["within_level"])
	}

	result = callTool(t, ctx, session, "check_word_level", map[string]any{
		"word": "paradigm", "level": "C1",
	})
	if within, ok := result["within_level"].(bool); !ok || !within {
		t.Errorf("within_level = %v, want true", result["within_level"])
	}
}

func TestDetailedAnalysisTool(t *testing.T) {
	ctx := context.Background()
	session := connectInMemory(t, ctx, newTestServer(t))
	defer session.Close()

	result := callTool(t, ctx, session, "get_detailed_analysis", map[string]any{
		"text": "The cat sat on the mat. The dog ran in the park.",
	})
	if result["CEFR-J_Level"] == "" {
		t.Errorf("missing CEFR-J_Level in %v", result)
	}
	if _, ok := result["Text_Statistics"]; !ok {
		t.Errorf("missing Text_Statistics in %v", result)
	}
}

func TestAnalyzeFileTool(t *testing.T) {
	ctx := context.Background()
	session := connectInMemory(t, ctx, newTestServer(t))
	defer session.Close()

	path := filepath.Join(t.TempDir(), "sample.txt")
	content := "The cat sat on the mat. The dog ran in the park."
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	result := callTool(t, ctx, session, "analyze_file", map[string]any{"path": path})
	if result["CEFR-J_Level"] == "" {
		t.Errorf("missing CEFR-J_Level in %v", result)
	}
}
