// ABOUTME: CLI commands for managing expenses.
// ABOUTME: Supports add, list, delete, and summary subcommands backed by the tool registry.
package main

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/fatih/color"
	"github.com/harperreed/lifeos/internal/tools"
	"github.com/spf13/cobra"
)

var (
	expenseDesc     string
	expenseDate     string
	expenseFrom     string
	expenseTo       string
	expenseCategory string
	expenseJSON     bool
)

var expenseCmd = &cobra.Command{
	Use:     "expense",
	Aliases: []string{"e", "exp"},
	Short:   "Manage expenses",
	Long: `Track what you spend.

COMMANDS:

  add       Log an expense
  list      List expenses in a date range
  delete    Delete an expense by its full ID
  summary   Total spending per category

Date ranges default to the current month: --from is the first of the month
and --to is today. Both bounds are inclusive.

Categories are freeform. Use whatever makes sense for you:
  Food, Fitness, Transport, Rent, Health, etc.`,
}

var expenseAddCmd = &cobra.Command{
	Use:   "add <amount> <category>",
	Short: "Log an expense",
	Long: `Log an expense. The date defaults to today.

Examples:
  lifeos expense add 5.50 Food --desc "Protein shake"
  lifeos expense add 20 Transport --date 2024-05-01`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		amount, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return fmt.Errorf("invalid amount: %s", args[0])
		}

		res, err := callTool(cmd, tools.ToolLogExpense, tools.LogExpenseArgs{
			Amount:          amount,
			Category:        args[1],
			Description:     &expenseDesc,
			TransactionDate: defaultDate(expenseDate),
		})
		if err != nil {
			return err
		}

		success(cmd, "%s", res.Text())
		return nil
	},
}

var expenseListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List expenses",
	Long: `List expenses in a date range, oldest first.

OUTPUT FORMAT:

  Each line shows: ID  DATE  CATEGORY  AMOUNT  (DESCRIPTION)

  Use the full ID with 'lifeos expense delete'.

EXAMPLES:

  lifeos expense list                              # This month
  lifeos expense list --from 2024-05-01 --to 2024-05-31
  lifeos expense list --category food              # Substring, any case
  lifeos expense list --json                       # Raw tool output`,
	RunE: func(cmd *cobra.Command, args []string) error {
		from, to := monthRange(expenseFrom, expenseTo)
		res, err := callTool(cmd, tools.ToolGetExpenses, tools.GetExpensesArgs{
			StartDate: from,
			EndDate:   to,
			Category:  &expenseCategory,
		})
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if expenseJSON {
			fmt.Fprintln(out, res.Text())
			return nil
		}

		var records []tools.ExpenseRecord
		if err := decodeValue(res, &records); err != nil {
			return err
		}
		if len(records) == 0 {
			fmt.Fprintln(out, "No expenses found.")
			return nil
		}

		faint := color.New(color.Faint)
		total := 0.0
		for _, r := range records {
			desc := ""
			if r.Description != nil && *r.Description != "" {
				desc = faint.Sprintf(" (%s)", truncate(*r.Description, 30))
			}
			fmt.Fprintf(out, "%s %s %s %10.2f%s\n",
				faint.Sprint(r.ID),
				r.Date,
				padRight(r.Category, 16),
				r.Amount,
				desc)
			total += r.Amount
		}
		fmt.Fprintf(out, "%d expenses, total $%.2f\n", len(records), total)

		return nil
	},
}

var expenseDeleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"del", "rm"},
	Short:   "Delete an expense",
	Long: `Delete an expense by its full UUID, as shown by 'lifeos expense list'.

CAUTION:

  This permanently deletes the expense. There is no undo.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := callTool(cmd, tools.ToolDeleteExpense, tools.DeleteExpenseArgs{ExpenseID: args[0]})
		if err != nil {
			return err
		}

		removed(cmd, "%s", res.Text())
		return nil
	},
}

var expenseSummaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Total spending per category",
	Long: `Show total spending per category in a date range.

Categories with no expenses in the range are omitted.

EXAMPLES:

  lifeos expense summary                           # This month
  lifeos expense summary --from 2024-01-01 --to 2024-12-31`,
	RunE: func(cmd *cobra.Command, args []string) error {
		from, to := monthRange(expenseFrom, expenseTo)
		res, err := callTool(cmd, tools.ToolSpendingSummary, tools.RangeArgs{StartDate: from, EndDate: to})
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if expenseJSON {
			fmt.Fprintln(out, res.Text())
			return nil
		}

		var summary map[string]float64
		if err := decodeValue(res, &summary); err != nil {
			return err
		}
		if len(summary) == 0 {
			fmt.Fprintf(out, "No spending between %s and %s.\n", from, to)
			return nil
		}

		categories := make([]string, 0, len(summary))
		for c := range summary {
			categories = append(categories, c)
		}
		sort.Strings(categories)

		fmt.Fprintf(out, "Spending %s to %s\n", from, to)
		total := 0.0
		for _, c := range categories {
			fmt.Fprintf(out, "  %s %10.2f\n", padRight(c, 16), summary[c])
			total += summary[c]
		}
		fmt.Fprintf(out, "  %s %10.2f\n", padRight("Total", 16), total)

		return nil
	},
}

func init() {
	expenseAddCmd.Flags().StringVarP(&expenseDesc, "desc", "d", "", "description of the expense")
	expenseAddCmd.Flags().StringVar(&expenseDate, "date", "", "transaction date YYYY-MM-DD (default: today)")

	for _, c := range []*cobra.Command{expenseListCmd, expenseSummaryCmd} {
		c.Flags().StringVar(&expenseFrom, "from", "", "start date YYYY-MM-DD (default: first of this month)")
		c.Flags().StringVar(&expenseTo, "to", "", "end date YYYY-MM-DD (default: today)")
		c.Flags().BoolVar(&expenseJSON, "json", false, "print the raw tool result as JSON")
	}
	expenseListCmd.Flags().StringVarP(&expenseCategory, "category", "c", "", "filter by category substring")

	expenseCmd.AddCommand(expenseAddCmd, expenseListCmd, expenseDeleteCmd, expenseSummaryCmd)
	rootCmd.AddCommand(expenseCmd)
}
