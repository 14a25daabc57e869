// ABOUTME: Fixed catalog of named tools and the single dispatch entry point.
// ABOUTME: Decodes and validates JSON arguments, logs each call, renders results.
package tools

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/harperreed/lifeos/internal/logger"
)

// Tool names.
const (
	ToolLogExpense      = "log_expense"
	ToolGetExpenses     = "get_expenses"
	ToolDeleteExpense   = "delete_expense"
	ToolSpendingSummary = "get_spending_summary"
	ToolLogExercise     = "log_exercise"
	ToolGetWorkouts     = "get_workouts"
	ToolDeleteExercise  = "delete_exercise"
	ToolWorkoutSummary  = "get_workout_summary"
)

// Tool is one catalog entry.
type Tool struct {
	Name        string
	Description string
	InputSchema *jsonschema.Schema

	resolved *jsonschema.Resolved
	call     func(ctx context.Context, raw json.RawMessage) (any, error)
}

// Result is the outcome of a tool call: a value on success, a typed error
// otherwise. Exactly one of Value and Err is set.
type Result struct {
	Tool  string
	Value any
	Err   *Error
}

// IsError reports whether the result should be flagged as a failure to the
// caller. Not-found is an ordinary answer, not a failure.
func (r Result) IsError() bool {
	return r.Err != nil && r.Err.Kind != KindNotFound
}

// Text renders the result as the caller-facing string. Confirmations and
// errors are returned verbatim; structured values become indented JSON.
func (r Result) Text() string {
	if r.Err != nil {
		return r.Err.Message
	}
	if s, ok := r.Value.(string); ok {
		return s
	}
	b, err := json.MarshalIndent(r.Value, "", "  ")
	if err != nil {
		return fmt.Sprintf("Error: render %s result: %v", r.Tool, err)
	}
	return string(b)
}

// Registry is the read-only tool catalog.
type Registry struct {
	tools  []*Tool
	byName map[string]*Tool
}

// NewRegistry builds the catalog over svc.
func NewRegistry(svc *Service) (*Registry, error) {
	r := &Registry{byName: make(map[string]*Tool)}

	regs := []error{
		register(r, ToolLogExpense,
			"Log a new financial expense to the database.",
			func(ctx context.Context, a LogExpenseArgs) (any, error) { return svc.LogExpense(ctx, a) }),
		register(r, ToolGetExpenses,
			"Retrieve expenses within a specific date range. Use this to answer questions about past spending.",
			func(ctx context.Context, a GetExpensesArgs) (any, error) { return svc.GetExpenses(ctx, a) }),
		register(r, ToolDeleteExpense,
			"Delete a specific expense from the database using its unique ID. If you don't know the ID, use get_expenses first to find it.",
			func(ctx context.Context, a DeleteExpenseArgs) (any, error) { return svc.DeleteExpense(ctx, a) }),
		register(r, ToolSpendingSummary,
			"Get a summary of total spending grouped by category for a specific date range. Use this to answer questions like \"How much did I spend on X this month?\"",
			func(ctx context.Context, a RangeArgs) (any, error) { return svc.SpendingSummary(ctx, a) }),
		register(r, ToolLogExercise,
			"Log a single exercise movement. If a workout session with this name already exists for the date, the exercise is appended to it.",
			func(ctx context.Context, a LogExerciseArgs) (any, error) { return svc.LogExercise(ctx, a) }),
		register(r, ToolGetWorkouts,
			"Retrieve all workout sessions and their specific exercises within a date range.",
			func(ctx context.Context, a RangeArgs) (any, error) { return svc.GetWorkouts(ctx, a) }),
		register(r, ToolDeleteExercise,
			"Delete a specific exercise log from the database using its unique ID. Use get_workouts first to find the exact exercise_id.",
			func(ctx context.Context, a DeleteExerciseArgs) (any, error) { return svc.DeleteExercise(ctx, a) }),
		register(r, ToolWorkoutSummary,
			"Get a high-level summary of fitness metrics (total distance and total duration) for a given date range.",
			func(ctx context.Context, a RangeArgs) (any, error) { return svc.WorkoutSummary(ctx, a) }),
	}
	if err := errors.Join(regs...); err != nil {
		return nil, err
	}

	return r, nil
}

// register adds a tool whose arguments decode into In. The input schema is
// derived from In's json and jsonschema tags.
func register[In any](r *Registry, name, description string, fn func(context.Context, In) (any, error)) error {
	schema, err := jsonschema.For[In](nil)
	if err != nil {
		return fmt.Errorf("schema for %s: %w", name, err)
	}
	resolved, err := schema.Resolve(nil)
	if err != nil {
		return fmt.Errorf("resolve schema for %s: %w", name, err)
	}

	t := &Tool{
		Name:        name,
		Description: description,
		InputSchema: schema,
		resolved:    resolved,
	}
	t.call = func(ctx context.Context, raw json.RawMessage) (any, error) {
		var in In
		if err := json.NewDecoder(bytes.NewReader(raw)).Decode(&in); err != nil {
			return nil, invalidArgument("invalid arguments for %s: %v", name, err)
		}
		return fn(ctx, in)
	}

	r.tools = append(r.tools, t)
	r.byName[name] = t
	return nil
}

// Tools returns the catalog in registration order.
func (r *Registry) Tools() []*Tool {
	out := make([]*Tool, len(r.tools))
	copy(out, r.tools)
	return out
}

// Lookup finds a tool by name.
func (r *Registry) Lookup(name string) (*Tool, bool) {
	t, ok := r.byName[name]
	return t, ok
}

// Call dispatches a tool by name with JSON-encoded arguments. It never
// returns a Go error; every failure is folded into the Result.
func (r *Registry) Call(ctx context.Context, name string, raw json.RawMessage) Result {
	start := time.Now()
	res := r.dispatch(ctx, name, raw)

	log := logger.Get()
	if res.Err == nil {
		log.Infow("tool call",
			"tool", name,
			"outcome", "ok",
			"duration_ms", time.Since(start).Milliseconds(),
		)
		return res
	}

	fields := []any{
		"tool", name,
		"outcome", string(res.Err.Kind),
		"duration_ms", time.Since(start).Milliseconds(),
	}
	if res.Err.Err != nil {
		fields = append(fields, "error", res.Err.Err.Error())
	}
	if res.Err.Kind == KindStoreFailure {
		log.Errorw("tool call failed", fields...)
	} else {
		log.Infow("tool call", fields...)
	}
	return res
}

func (r *Registry) dispatch(ctx context.Context, name string, raw json.RawMessage) (res Result) {
	res.Tool = name

	defer func() {
		if p := recover(); p != nil {
			res.Value = nil
			res.Err = storeFailure("run "+name, fmt.Errorf("panic: %v", p))
		}
	}()

	t, ok := r.byName[name]
	if !ok {
		res.Err = invalidArgument("unknown tool %q", name)
		return res
	}

	if len(bytes.TrimSpace(raw)) == 0 || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		raw = json.RawMessage("{}")
	}

	var instance any
	if err := json.Unmarshal(raw, &instance); err != nil {
		res.Err = invalidArgument("invalid arguments for %s: %v", name, err)
		return res
	}
	if err := t.resolved.Validate(instance); err != nil {
		res.Err = invalidArgument("invalid arguments for %s: %v", name, err)
		return res
	}

	value, err := t.call(ctx, raw)
	if err != nil {
		var te *Error
		if !errors.As(err, &te) {
			te = storeFailure("run "+name, err)
		}
		res.Err = te
		return res
	}

	res.Value = value
	return res
}
