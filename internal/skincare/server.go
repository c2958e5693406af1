// Package skincare exposes the skin type content and reminder scheduler as
// MCP tools.
package skincare

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/nkahoots/beauty-bot/internal/reminder"
	"github.com/nkahoots/beauty-bot/internal/scheduler"
	"github.com/nkahoots/beauty-bot/internal/skin"
)

const (
	serverName    = "skincare"
	serverVersion = "1.0.0"

	defaultHistoryLimit = 20
)

// History reads past reminder events. *reminder.Journal satisfies it.
type History interface {
	List(ctx context.Context, limit int) ([]reminder.Event, error)
}

// Server is the MCP server for skin type content and reminders.
type Server struct {
	mcpServer *server.MCPServer
	scheduler *scheduler.Scheduler
	history   History
}

// NewServer creates a new MCP server. history may be nil.
func NewServer(sched *scheduler.Scheduler, history History) *Server {
	s := &Server{
		scheduler: sched,
		history:   history,
	}

	s.mcpServer = server.NewMCPServer(
		serverName,
		serverVersion,
		server.WithToolCapabilities(false),
	)

	s.registerTools()
	return s
}

// MCPServer returns the underlying MCP server for serving.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcpServer
}

func (s *Server) registerTools() {
	s.mcpServer.AddTool(
		mcp.NewTool("list_skin_types",
			mcp.WithDescription("List the supported skin types with a short summary of each"),
		),
		s.handleListSkinTypes,
	)

	s.mcpServer.AddTool(
		mcp.NewTool("get_skin_profile",
			mcp.WithDescription("Get description, recommended products, daily schedule, tips and best time to wash for a skin type"),
			mcp.WithString("skin_type", mcp.Required(), mcp.Description("Dry, Oily, Combination or Sensitive")),
		),
		s.handleGetSkinProfile,
	)

	s.mcpServer.AddTool(
		mcp.NewTool("schedule_reminder",
			mcp.WithDescription("Schedule a one-shot skincare reminder. If the time already passed, it is moved to the next day (or to the same date next year when the date already passed) only when roll_forward is true"),
			mcp.WithString("skin_type", mcp.Required(), mcp.Description("Dry, Oily, Combination or Sensitive")),
			mcp.WithString("date", mcp.Required(), mcp.Description("Date in MM-DD format")),
			mcp.WithString("time", mcp.Required(), mcp.Description("Time in HH:MM format, 12-hour clock")),
			mcp.WithString("meridiem", mcp.Required(), mcp.Description("AM or PM")),
			mcp.WithBoolean("roll_forward", mcp.Description("Move a past time to the following day, or a passed date to next year (default: false)")),
		),
		s.handleScheduleReminder,
	)

	s.mcpServer.AddTool(
		mcp.NewTool("list_pending_reminders",
			mcp.WithDescription("List reminders that are armed and have not fired yet"),
		),
		s.handleListPending,
	)

	s.mcpServer.AddTool(
		mcp.NewTool("cancel_reminder",
			mcp.WithDescription("Cancel a pending reminder"),
			mcp.WithString("id", mcp.Required(), mcp.Description("Reminder ID")),
		),
		s.handleCancelReminder,
	)

	s.mcpServer.AddTool(
		mcp.NewTool("reminder_history",
			mcp.WithDescription("Show recent reminder events (scheduled, fired, cancelled), newest first"),
			mcp.WithNumber("limit", mcp.Description("Maximum number of events (default: 20)")),
		),
		s.handleReminderHistory,
	)
}

type skinTypeSummary struct {
	Name    skin.SkinType `json:"name"`
	Summary string        `json:"summary"`
}

func (s *Server) handleListSkinTypes(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var out []skinTypeSummary
	for _, p := range skin.Catalog() {
		out = append(out, skinTypeSummary{Name: p.Type, Summary: p.Summary})
	}
	return jsonResult(out)
}

func (s *Server) handleGetSkinProfile(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	t, err := skin.Parse(req.GetString("skin_type", ""))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	p, err := skin.Lookup(t)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(p)
}

func (s *Server) handleScheduleReminder(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	t, err := skin.Parse(req.GetString("skin_type", ""))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	r := reminder.Request{
		Date:     req.GetString("date", ""),
		Time:     req.GetString("time", ""),
		Meridiem: req.GetString("meridiem", ""),
	}

	confirm := scheduler.NeverRollForward
	if req.GetBool("roll_forward", false) {
		confirm = scheduler.AlwaysRollForward
	}

	h, err := s.scheduler.Schedule(ctx, t, r, confirm)
	switch {
	case errors.Is(err, reminder.ErrPastTimeDeclined):
		return mcp.NewToolResultText("The chosen time has already passed. No reminder was set; retry with roll_forward=true to use the following day (or next year for a date that already passed)."), nil
	case err != nil:
		return mcp.NewToolResultError(fmt.Sprintf("failed to schedule reminder: %v", err)), nil
	}

	return jsonResult(h.Resolved)
}

func (s *Server) handleListPending(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	pending := s.scheduler.Pending()
	if len(pending) == 0 {
		return mcp.NewToolResultText("No pending reminders."), nil
	}
	return jsonResult(pending)
}

func (s *Server) handleCancelReminder(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id := req.GetString("id", "")
	if id == "" {
		return mcp.NewToolResultError("id is required"), nil
	}

	if !s.scheduler.Cancel(id) {
		return mcp.NewToolResultError(fmt.Sprintf("no pending reminder with id %s", id)), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("Reminder %s cancelled.", id)), nil
}

func (s *Server) handleReminderHistory(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if s.history == nil {
		return mcp.NewToolResultError("reminder history is disabled"), nil
	}

	limit := int(req.GetFloat("limit", defaultHistoryLimit))
	if limit <= 0 {
		return mcp.NewToolResultError("limit must be a positive number"), nil
	}

	events, err := s.history.List(ctx, limit)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to read history: %v", err)), nil
	}
	if len(events) == 0 {
		return mcp.NewToolResultText("No reminder history yet."), nil
	}
	return jsonResult(events)
}

func jsonResult(v interface{}) (*mcp.CallToolResult, error) {
	output, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to encode result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(output)), nil
}
