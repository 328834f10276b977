// Package mcptools exposes the screening engine as MCP tools over stdio.
package mcptools

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/dshills/tdahscreen/internal/scoring"
)

const serverName = "tdahscreen"

// NewServer builds an MCP server with every screening tool registered.
func NewServer(engine *scoring.Engine, version string) *server.MCPServer {
	s := server.NewMCPServer(
		serverName,
		version,
		server.WithToolCapabilities(true),
		server.WithRecovery(),
		server.WithInstructions(instructions),
	)

	questions := NewQuestionsTool(engine)
	s.AddTool(questions.Definition(), questions.Handle)

	assess := NewAssessTool(engine)
	s.AddTool(assess.Definition(), assess.Handle)

	feedback := NewFeedbackTool(engine)
	s.AddTool(feedback.Definition(), feedback.Handle)

	severity := NewSeverityTool(engine)
	s.AddTool(severity.Definition(), severity.Handle)

	return s
}

const instructions = "Parent-reported attention and behavior screening. " +
	"Call screening_questions to list the questions and their allowed options, " +
	"then screening_assess with a JSON object mapping question ids to the chosen option. " +
	"Results are an indication only and never a diagnosis."
