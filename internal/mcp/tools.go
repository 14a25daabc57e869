// ABOUTME: MCP tool bindings for the lifeos registry.
// ABOUTME: Each tool forwards its typed input to Registry.Call and renders the Result.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/harperreed/lifeos/internal/tools"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerTools() {
	// Expenses
	addTool[tools.LogExpenseArgs](s, tools.ToolLogExpense)
	addTool[tools.GetExpensesArgs](s, tools.ToolGetExpenses)
	addTool[tools.DeleteExpenseArgs](s, tools.ToolDeleteExpense)
	addTool[tools.RangeArgs](s, tools.ToolSpendingSummary)

	// Workouts
	addTool[tools.LogExerciseArgs](s, tools.ToolLogExercise)
	addTool[tools.RangeArgs](s, tools.ToolGetWorkouts)
	addTool[tools.DeleteExerciseArgs](s, tools.ToolDeleteExercise)
	addTool[tools.RangeArgs](s, tools.ToolWorkoutSummary)
}

// addTool publishes a registry tool. The SDK derives the input schema from
// In, which carries the same tags the registry validates against.
func addTool[In any](s *Server, name string) {
	t, ok := s.registry.Lookup(name)
	if !ok {
		panic(fmt.Sprintf("mcp: tool %q is not registered", name))
	}

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        t.Name,
		Description: t.Description,
	}, handler[In](s, name))
}

func handler[In any](s *Server, name string) mcp.ToolHandlerFor[In, any] {
	return func(ctx context.Context, req *mcp.CallToolRequest, input In) (*mcp.CallToolResult, any, error) {
		raw, err := json.Marshal(input)
		if err != nil {
			return nil, nil, fmt.Errorf("encode %s arguments: %w", name, err)
		}
		return toCallToolResult(s.registry.Call(ctx, name, raw)), nil, nil
	}
}

// toCallToolResult renders a registry Result. Text always carries the
// caller-facing string; structured values are also attached under "result".
func toCallToolResult(res tools.Result) *mcp.CallToolResult {
	out := &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: res.Text()}},
		IsError: res.IsError(),
	}

	if res.Err == nil {
		if _, isText := res.Value.(string); !isText {
			out.StructuredContent = map[string]any{"result": res.Value}
		}
	}

	return out
}
