// ABOUTME: MCP resource implementations for lifeos.
// ABOUTME: Provides lifeos://today and lifeos://month snapshots built from tool calls.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/harperreed/lifeos/internal/models"
	"github.com/harperreed/lifeos/internal/tools"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	todayURI = "lifeos://today"
	monthURI = "lifeos://month"
)

// now is swapped in tests.
var now = time.Now

func (s *Server) registerResources() {
	// lifeos://today - expenses and workouts logged for today
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         todayURI,
		Name:        "Today",
		Description: "Expenses and workout sessions dated today",
		MIMEType:    "application/json",
	}, s.handleTodayResource)

	// lifeos://month - spending and workout totals for the current month
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         monthURI,
		Name:        "This Month",
		Description: "Spending by category and workout totals from the first of the month to today",
		MIMEType:    "application/json",
	}, s.handleMonthResource)
}

// Resource handlers

func (s *Server) handleTodayResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	today := models.DateOf(now()).String()

	expenses, err := s.callValue(ctx, tools.ToolGetExpenses, tools.GetExpensesArgs{StartDate: today, EndDate: today})
	if err != nil {
		return nil, err
	}
	workouts, err := s.callValue(ctx, tools.ToolGetWorkouts, tools.RangeArgs{StartDate: today, EndDate: today})
	if err != nil {
		return nil, err
	}

	return jsonResource(todayURI, map[string]any{
		"date":     today,
		"expenses": expenses,
		"workouts": workouts,
	})
}

func (s *Server) handleMonthResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	t := now()
	first := models.DateOf(time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())).String()
	today := models.DateOf(t).String()
	r := tools.RangeArgs{StartDate: first, EndDate: today}

	spending, err := s.callValue(ctx, tools.ToolSpendingSummary, r)
	if err != nil {
		return nil, err
	}
	workouts, err := s.callValue(ctx, tools.ToolWorkoutSummary, r)
	if err != nil {
		return nil, err
	}

	return jsonResource(monthURI, map[string]any{
		"start_date": first,
		"end_date":   today,
		"spending":   spending,
		"workouts":   workouts,
	})
}

// callValue runs a tool through the registry and returns its value, turning
// any tool error into a resource error.
func (s *Server) callValue(ctx context.Context, name string, args any) (any, error) {
	raw, err := json.Marshal(args)
	if err != nil {
		return nil, fmt.Errorf("encode %s arguments: %w", name, err)
	}

	res := s.registry.Call(ctx, name, raw)
	if res.Err != nil {
		return nil, res.Err
	}
	return res.Value, nil
}

func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
