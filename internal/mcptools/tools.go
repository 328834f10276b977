package mcptools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/dshills/tdahscreen/internal/bank"
	"github.com/dshills/tdahscreen/internal/render"
	"github.com/dshills/tdahscreen/internal/scoring"
)

// QuestionsTool handles the screening_questions MCP tool.
type QuestionsTool struct {
	engine *scoring.Engine
}

func NewQuestionsTool(engine *scoring.Engine) *QuestionsTool {
	return &QuestionsTool{engine: engine}
}

func (t *QuestionsTool) Definition() mcp.Tool {
	return mcp.NewTool("screening_questions",
		mcp.WithDescription("List the screening questions with their ids, categories and allowed options."),
		mcp.WithString("category",
			mcp.Description("Only list questions of this category: concentracao, impulsividade or hiperatividade"),
		),
	)
}

func (t *QuestionsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	category := bank.Category(strings.TrimSpace(req.GetString("category", "")))
	if category != "" && !category.Valid() {
		return mcp.NewToolResultError(fmt.Sprintf("unknown category %q", category)), nil
	}

	var out []bank.Question
	for _, q := range t.engine.Bank().Questions() {
		if category == "" || q.Category == category {
			out = append(out, q)
		}
	}
	return jsonResult(out)
}

// AssessTool handles the screening_assess MCP tool.
type AssessTool struct {
	engine *scoring.Engine
}

func NewAssessTool(engine *scoring.Engine) *AssessTool {
	return &AssessTool{engine: engine}
}

func (t *AssessTool) Definition() mcp.Tool {
	return mcp.NewTool("screening_assess",
		mcp.WithDescription(
			"Score a set of answers. Returns per-category percentages, severity levels, "+
				"descriptions, per-question feedback and an overall recommendation.",
		),
		mcp.WithString("responses",
			mcp.Required(),
			mcp.Description(`JSON object mapping question id to the chosen option, e.g. {"1": "Sempre", "2": "Raramente"}`),
		),
		mcp.WithString("format",
			mcp.Description("Output format: json (default) or markdown"),
		),
	)
}

func (t *AssessTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	raw := strings.TrimSpace(req.GetString("responses", ""))
	if raw == "" {
		return mcp.NewToolResultError("'responses' is required"), nil
	}
	format := req.GetString("format", "json")
	if format != "json" && format != "markdown" {
		return mcp.NewToolResultError(fmt.Sprintf("unknown format %q: use json or markdown", format)), nil
	}

	var byKey map[string]string
	if err := json.Unmarshal([]byte(raw), &byKey); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("'responses' must be a JSON object of strings: %v", err)), nil
	}
	resp, err := scoring.ResponsesFromStrings(byKey)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	a, err := t.engine.Assess(resp)
	if err != nil {
		return engineError(err)
	}
	if format == "markdown" {
		return mcp.NewToolResultText(render.Markdown(a)), nil
	}
	return jsonResult(a)
}

// FeedbackTool handles the screening_feedback MCP tool.
type FeedbackTool struct {
	engine *scoring.Engine
}

func NewFeedbackTool(engine *scoring.Engine) *FeedbackTool {
	return &FeedbackTool{engine: engine}
}

func (t *FeedbackTool) Definition() mcp.Tool {
	return mcp.NewTool("screening_feedback",
		mcp.WithDescription("Return the feedback text shown after a single answer."),
		mcp.WithNumber("question_id",
			mcp.Required(),
			mcp.Description("Question id"),
		),
		mcp.WithString("option",
			mcp.Required(),
			mcp.Description("The chosen option, exactly as listed by screening_questions"),
		),
	)
}

func (t *FeedbackTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	rawID := req.GetFloat("question_id", 0)
	if math.IsInf(rawID, 0) || rawID != math.Trunc(rawID) {
		return mcp.NewToolResultError(fmt.Sprintf("'question_id' must be a whole number, got %v", rawID)), nil
	}
	id := int(rawID)
	option := req.GetString("option", "")
	if option == "" {
		return mcp.NewToolResultError("'option' is required"), nil
	}

	q, ok := t.engine.Bank().Question(id)
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf("question %d not found", id)), nil
	}
	text, err := t.engine.Feedback(q, option)
	if err != nil {
		return engineError(err)
	}
	return mcp.NewToolResultText(text), nil
}

// SeverityTool handles the screening_severity MCP tool.
type SeverityTool struct {
	engine *scoring.Engine
}

func NewSeverityTool(engine *scoring.Engine) *SeverityTool {
	return &SeverityTool{engine: engine}
}

func (t *SeverityTool) Definition() mcp.Tool {
	return mcp.NewTool("screening_severity",
		mcp.WithDescription("Classify a percentage score (0-100) into low, moderate, high or very_high."),
		mcp.WithNumber("score",
			mcp.Required(),
			mcp.Description("Percentage score between 0 and 100"),
		),
	)
}

func (t *SeverityTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	if _, ok := args["score"]; !ok {
		return mcp.NewToolResultError("'score' is required"), nil
	}
	score := req.GetFloat("score", -1)
	if score < 0 || score > 100 {
		return mcp.NewToolResultError("'score' must be a number between 0 and 100"), nil
	}
	sev := t.engine.SeverityLevel(score)
	return mcp.NewToolResultText(fmt.Sprintf("%s (%s)", sev, sev.Label())), nil
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("mcptools: encoding result: %w", err)
	}
	return mcp.NewToolResultText(string(data)), nil
}

// engineError turns caller mistakes into tool errors and reports anything
// else as a protocol error.
func engineError(err error) (*mcp.CallToolResult, error) {
	var unresolved *scoring.UnresolvedResponseError
	if errors.As(err, &unresolved) {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return nil, err
}
