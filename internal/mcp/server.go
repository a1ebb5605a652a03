// Package mcp exposes the difficulty estimator as Model Context
// Protocol tools over stdio.
package mcp

import (
	"context"
	"log/slog"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/straygizmo/gocefrizer/internal/analyze"
	"github.com/straygizmo/gocefrizer/internal/textio"
)

// Server wraps the MCP SDK server around an Analyzer.
type Server struct {
	MCPServer *sdkmcp.Server

	analyzer *analyze.Analyzer
	log      *slog.Logger
}

// NewServer creates the MCP server with all estimator tools registered.
func NewServer(a *analyze.Analyzer, version string) *Server {
	s := &Server{
		MCPServer: sdkmcp.NewServer(
			&sdkmcp.Implementation{Name: "gocefrizer", Version: version},
			nil,
		),
		analyzer: a,
		log:      slog.Default().With("component", "mcp"),
	}
	s.registerTools()
	return s
}

// Run serves MCP over the given transport until the context ends.
func (s *Server) Run(ctx context.Context, transport sdkmcp.Transport) error {
	return s.MCPServer.Run(ctx, transport)
}

func (s *Server) registerTools() {
	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "analyze_text",
		Description: "Estimate the CEFR-J difficulty level of English text (10-10000 words). Returns the level and per-metric CEFR scores.",
	}, s.handleAnalyzeText)

	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "get_detailed_analysis",
		Description: "Full analysis breakdown: CEFR-J level, per-metric scores, raw metric values and text statistics.",
	}, s.handleDetailedAnalysis)

	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "get_word_cefr_level",
		Description: "Look up the CEFR level of a single English word. The level is empty for unknown words.",
	}, s.handleWordLevel)

	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "check_word_level",
		Description: "Report whether a word's CEFR level is at or below a target level (A1-C2). Unknown words report false.",
	}, s.handleCheckWordLevel)

	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "get_unused_words",
		Description: "List dictionary words of a CEFR level (A1-C2) that do not occur in the text, with their part of speech.",
	}, s.handleUnusedWords)

	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "analyze_file",
		Description: "Analyze a text, Markdown or HTML file from disk and estimate its CEFR-J level.",
	}, s.handleAnalyzeFile)
}

type analyzeTextInput struct {
	Text string `json:"text" jsonschema:"English text to analyze"`
}

type wordInput struct {
	Word string `json:"word" jsonschema:"single English word"`
}

type checkLevelInput struct {
	Word  string `json:"word" jsonschema:"single English word"`
	Level string `json:"level" jsonschema:"CEFR level to compare against (A1, A2, B1, B2, C1, C2)"`
}

type checkLevelOutput struct {
	WithinLevel bool `json:"within_level"`
}

type unusedInput struct {
	Level string `json:"level" jsonschema:"CEFR level (A1, A2, B1, B2, C1, C2)"`
	Text  string `json:"text" jsonschema:"English text to check against"`
}

type fileInput struct {
	Path string `json:"path" jsonschema:"path to a .txt, .md or .html file"`
}

func (s *Server) handleAnalyzeText(_ context.Context, _ *sdkmcp.CallToolRequest, in analyzeTextInput) (*sdkmcp.CallToolResult, map[string]string, error) {
	result, err := s.analyzer.Analyze(in.Text)
	if err != nil {
		return nil, nil, err
	}
	s.log.Info("analyzed text", "level", result["CEFR-J_Level"])
	return nil, result, nil
}

func (s *Server) handleDetailedAnalysis(_ context.Context, _ *sdkmcp.CallToolRequest, in analyzeTextInput) (*sdkmcp.CallToolResult, analyze.Detailed, error) {
	result, err := s.analyzer.DetailedAnalyze(in.Text)
	if err != nil {
		return nil, analyze.Detailed{}, err
	}
	return nil, *result, nil
}

func (s *Server) handleWordLevel(_ context.Context, _ *sdkmcp.CallToolRequest, in wordInput) (*sdkmcp.CallToolResult, map[string]string, error) {
	return nil, s.analyzer.WordLevel(in.Word), nil
}

func (s *Server) handleCheckWordLevel(_ context.Context, _ *sdkmcp.CallToolRequest, in checkLevelInput) (*sdkmcp.CallToolResult, checkLevelOutput, error) {
	within, err := s.analyzer.CheckWordLevel(in.Word, in.Level)
	if err != nil {
		return nil, checkLevelOutput{}, err
	}
	return nil, checkLevelOutput{WithinLevel: within}, nil
}

func (s *Server) handleUnusedWords(_ context.Context, _ *sdkmcp.CallToolRequest, in unusedInput) (*sdkmcp.CallToolResult, map[string]string, error) {
	result, err := s.analyzer.UnusedWords(in.Level, in.Text)
	if err != nil {
		return nil, nil, err
	}
	return nil, result, nil
}

func (s *Server) handleAnalyzeFile(_ context.Context, _ *sdkmcp.CallToolRequest, in fileInput) (*sdkmcp.CallToolResult, map[string]string, error) {
	text, err := textio.FromFile(in.Path)
	if err != nil {
		return nil, nil, err
	}
	result, err := s.analyzer.Analyze(text)
	if err != nil {
		return nil, nil, err
	}
	s.log.Info("analyzed file", "path", in.Path, "level", result["CEFR-J_Level"])
	return nil, result, nil
}
