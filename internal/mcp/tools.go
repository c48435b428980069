package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/mvp-joe/synopsis/internal/docs"
	"github.com/mvp-joe/synopsis/internal/extraction"
	"github.com/mvp-joe/synopsis/internal/languages"
	"github.com/mvp-joe/synopsis/internal/parsers"
)

const (
	SynopsisToolName = "docs_synopsis"
	CodeToolName     = "docs_code"
	ProgressToolName = "docs_progress"
)

var languageList = strings.Join(languages.IDs(), ", ")

// tools holds the state shared by the tool handlers.
type tools struct {
	service    *docs.Service
	cache      *resultCache
	indicators []extraction.Indicator
	logger     *slog.Logger
}

// requestLogger tags a handler's log lines with a fresh request id.
func (t *tools) requestLogger(tool string) *slog.Logger {
	return t.logger.With("tool", tool, "request_id", uuid.NewString())
}

// AddSynopsisTool registers docs_synopsis.
func (t *tools) AddSynopsisTool(s *server.MCPServer) {
	tool := mcp.NewTool(
		SynopsisToolName,
		mcp.WithDescription("Infer the documentation shape of a selected piece of code: a function's parameters and return, a typedef's properties, or a class's superclass."),
		mcp.WithString("selection",
			mcp.Required(),
			mcp.Description("The selected source text (a whole construct or its first line)")),
		mcp.WithString("language",
			mcp.Required(),
			mcp.Description("Language id: "+languageList)),
		mcp.WithString("file",
			mcp.Description("Full text of the enclosing file, used to resolve methods. Defaults to the selection")),
		mcp.WithString("file_name",
			mcp.Description("File name whose extension overrides the language id")),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
	)
	s.AddTool(tool, t.handleSynopsis)
}

func (t *tools) handleSynopsis(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var req SynopsisRequest
	if res := parseToolArguments(request, &req); res != nil {
		return res, nil
	}
	if req.Selection == "" {
		return mcp.NewToolResultError("selection parameter is required"), nil
	}
	if req.Language == "" && req.FileName == "" {
		return mcp.NewToolResultError("language parameter is required"), nil
	}

	language := languages.FromFileName(req.FileName, req.Language)
	logger := t.requestLogger(SynopsisToolName)
	key := cacheKey(SynopsisToolName, language, req.Selection, req.File)
	if cached, ok := t.cache.get(key); ok {
		logger.Debug("cache hit", "language", language)
		return mcp.NewToolResultText(cached), nil
	}

	synopsis := t.service.GetSynopsis(ctx, req.Selection, language, req.File)
	logger.Debug("synopsis resolved", "language", language, "kind", synopsis.Kind())
	return t.respond(key, synopsis)
}

// AddCodeTool registers docs_code.
func (t *tools) AddCodeTool(s *server.MCPServer) {
	tool := mcp.NewTool(
		CodeToolName,
		mcp.WithDescription("Resolve the code to document when nothing is selected: the outermost function or type whose first line holds the cursor, or the cursor's line if it parses on its own."),
		mcp.WithString("file",
			mcp.Required(),
			mcp.Description("Full text of the file")),
		mcp.WithString("language",
			mcp.Required(),
			mcp.Description("Language id: "+languageList)),
		mcp.WithNumber("offset",
			mcp.Required(),
			mcp.Description("Byte offset of the cursor in file")),
		mcp.WithString("line",
			mcp.Required(),
			mcp.Description("Text of the cursor's line")),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
	)
	s.AddTool(tool, t.handleCode)
}

// CodeResponse is the docs_code result.
type CodeResponse struct {
	Code string `json:"code"`
}

func (t *tools) handleCode(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var req CodeRequest
	if res := parseToolArguments(request, &req); res != nil {
		return res, nil
	}
	if req.Language == "" {
		return mcp.NewToolResultError("language parameter is required"), nil
	}
	if req.Offset < 0 {
		return mcp.NewToolResultError("offset must not be negative"), nil
	}

	logger := t.requestLogger(CodeToolName)
	code, err := t.service.GetCode(ctx, req.File, req.Language, req.Offset, req.Line)
	if err != nil {
		if isUserError(err) {
			logger.Debug("code not resolved", "error", err)
			return mcp.NewToolResultError(err.Error()), nil
		}
		return nil, fmt.Errorf("code resolution failed: %w", err)
	}
	return marshalToolResponse(CodeResponse{Code: code})
}

// AddProgressTool registers docs_progress.
func (t *tools) AddProgressTool(s *server.MCPServer) {
	tool := mcp.NewTool(
		ProgressToolName,
		mcp.WithDescription("Measure documentation coverage of a source file: how many functions, methods, classes and types carry a doc comment."),
		mcp.WithString("code",
			mcp.Required(),
			mcp.Description("Full text of the file")),
		mcp.WithString("language",
			mcp.Required(),
			mcp.Description("Language id: "+languageList)),
		mcp.WithString("file_name",
			mcp.Description("File name whose extension overrides the language id")),
		mcp.WithArray("indicators",
			mcp.Description("Constructs to count: Functions, Methods, Classes, Types. Defaults to the configured set")),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
	)
	s.AddTool(tool, t.handleProgress)
}

// ProgressResponse is the docs_progress result. Progress is null for
// languages without coverage support.
type ProgressResponse struct {
	Language string               `json:"language"`
	Progress *extraction.Progress `json:"progress"`
}

func (t *tools) handleProgress(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var req ProgressRequest
	if res := parseToolArguments(request, &req); res != nil {
		return res, nil
	}
	if req.Language == "" && req.FileName == "" {
		return mcp.NewToolResultError("language parameter is required"), nil
	}

	indicators := t.indicators
	if len(req.Indicators) > 0 {
		parsed, err := extraction.ParseIndicators(req.Indicators)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		indicators = parsed
	}

	language := languages.FromFileName(req.FileName, req.Language)
	logger := t.requestLogger(ProgressToolName)
	names := make([]string, len(indicators))
	for i, ind := range indicators {
		names[i] = string(ind)
	}
	key := cacheKey(ProgressToolName, language, strings.Join(names, ","), req.Code)
	if cached, ok := t.cache.get(key); ok {
		logger.Debug("cache hit", "language", language)
		return mcp.NewToolResultText(cached), nil
	}

	progress, err := t.service.GetProgress(ctx, req.Code, language, indicators)
	if err != nil {
		return nil, fmt.Errorf("progress failed: %w", err)
	}
	if progress != nil {
		logger.Debug("progress computed", "language", language,
			"current", progress.Current, "total", progress.Total)
	}
	return t.respond(key, ProgressResponse{Language: language, Progress: progress})
}

// respond marshals response, caching the JSON under key.
func (t *tools) respond(key string, response any) (*mcp.CallToolResult, error) {
	jsonData, err := json.Marshal(response)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal response: %w", err)
	}
	t.cache.set(key, string(jsonData))
	return mcp.NewToolResultText(string(jsonData)), nil
}

// marshalToolResponse marshals a response object to JSON and returns it as an MCP tool result.
func marshalToolResponse(response any) (*mcp.CallToolResult, error) {
	jsonData, err := json.Marshal(response)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal response: %w", err)
	}
	return mcp.NewToolResultText(string(jsonData)), nil
}

// isUserError reports whether err should be shown to the client rather than
// treated as an internal failure.
func isUserError(err error) bool {
	return errors.Is(err, docs.ErrIncompleteLine) || errors.Is(err, parsers.ErrUnsupportedLanguage)
}
