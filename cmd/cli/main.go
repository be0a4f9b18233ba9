package main

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/iho/paisa/internal/adapter/http/dto"
)

var (
	baseURL string
	timeout time.Duration
	rawJSON bool
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "paisa-cli",
		Short:         "Rozana Paisa CLI",
		Long:          `A command line interface for the Rozana Paisa finance tracker API.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "server", "http://localhost:8080", "Base URL of the Rozana Paisa API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")
	rootCmd.PersistentFlags().BoolVar(&rawJSON, "json", false, "Print raw JSON responses")

	rootCmd.AddCommand(
		txCmd(),
		balanceCmd(),
		historyCmd(),
		reportCmd(),
		insightsCmd(),
		tipsCmd(),
		onboardCmd(),
	)
	return rootCmd
}

// apiClient talks to the /api/v1 endpoints.
type apiClient struct {
	base string
	http *http.Client
}

func newClient() *apiClient {
	return &apiClient{base: strings.TrimRight(baseURL, "/") + "/api/v1", http: &http.Client{Timeout: timeout}}
}

func (c *apiClient) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode >= http.StatusBadRequest {
		var e dto.ErrorResponse
		if json.Unmarshal(data, &e) == nil && e.Error != "" {
			if e.Message != "" {
				return fmt.Errorf("%s: %s (status %d)", e.Error, e.Message, resp.StatusCode)
			}
			return fmt.Errorf("%s (status %d)", e.Error, resp.StatusCode)
		}
		return fmt.Errorf("request failed (status %d): %s", resp.StatusCode, strings.TrimSpace(string(data)))
	}

	if out == nil || len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, out)
}

func txCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tx",
		Short: "Transaction operations",
	}
	cmd.AddCommand(txAddCmd(), txListCmd(), txUpdateCmd(), txDeleteCmd())
	return cmd
}

func addTxFlags(cmd *cobra.Command, req *dto.TransactionRequest, amount *string) {
	cmd.Flags().StringVar(amount, "amount", "", "Amount, e.g. 250.50")
	cmd.Flags().StringVar(&req.Type, "type", "", "INCOME or EXPENSE (default EXPENSE on add)")
	cmd.Flags().StringVar(&req.Category, "category", "", "Category name")
	cmd.Flags().StringVar(&req.Note, "note", "", "Optional note")
	cmd.Flags().StringVar(&req.Date, "date", "", "Date as YYYY-MM-DD (default today)")
}

func txAddCmd() *cobra.Command {
	var (
		req    dto.TransactionRequest
		amount string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a transaction",
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := decimal.NewFromString(amount)
			if err != nil {
				return fmt.Errorf("invalid amount %q", amount)
			}
			req.Amount = d
			if req.Type == "" {
				req.Type = "EXPENSE"
			}
			if req.Date == "" {
				req.Date = time.Now().Format(time.DateOnly)
			}

			var tx dto.TransactionResponse
			if err := newClient().do(cmd.Context(), http.MethodPost, "/transactions", req, &tx); err != nil {
				return err
			}
			if rawJSON {
				return printJSON(cmd.OutOrStdout(), tx)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s %s %s (%s)\n", tx.Type, tx.Amount.StringFixed(2), tx.Category, tx.ID)
			return nil
		},
	}
	addTxFlags(cmd, &req, &amount)
	_ = cmd.MarkFlagRequired("amount")
	_ = cmd.MarkFlagRequired("category")
	return cmd
}

func txListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List transactions, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			var txs []dto.TransactionResponse
			if err := newClient().do(cmd.Context(), http.MethodGet, "/transactions", nil, &txs); err != nil {
				return err
			}
			if rawJSON {
				return printJSON(cmd.OutOrStdout(), txs)
			}
			printTransactions(cmd.OutOrStdout(), txs)
			return nil
		},
	}
}

func txUpdateCmd() *cobra.Command {
	var (
		req    dto.TransactionRequest
		amount string
	)

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Edit a transaction; unset flags keep their current value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := newClient()
			path := "/transactions/" + url.PathEscape(args[0])

			var current dto.TransactionResponse
			if err := client.do(cmd.Context(), http.MethodGet, path, nil, &current); err != nil {
				return err
			}

			merged := dto.TransactionRequest{
				Amount:   current.Amount,
				Type:     current.Type,
				Category: current.Category,
				Note:     current.Note,
				Date:     current.Date.String(),
			}
			flags := cmd.Flags()
			if flags.Changed("amount") {
				d, err := decimal.NewFromString(amount)
				if err != nil {
					return fmt.Errorf("invalid amount %q", amount)
				}
				merged.Amount = d
			}
			if flags.Changed("type") {
				merged.Type = req.Type
			}
			if flags.Changed("category") {
				merged.Category = req.Category
			}
			if flags.Changed("note") {
				merged.Note = req.Note
			}
			if flags.Changed("date") {
				merged.Date = req.Date
			}

			var tx dto.TransactionResponse
			if err := client.do(cmd.Context(), http.MethodPut, path, merged, &tx); err != nil {
				return err
			}
			if rawJSON {
				return printJSON(cmd.OutOrStdout(), tx)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated %s\n", tx.ID)
			return nil
		},
	}
	addTxFlags(cmd, &req, &amount)
	return cmd
}

func txDeleteCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]
			if !yes && !confirm(cmd.InOrStdin(), cmd.OutOrStdout(), fmt.Sprintf("Delete transaction %s?", id)) {
				fmt.Fprintln(cmd.OutOrStdout(), "Aborted")
				return nil
			}

			path := "/transactions/" + url.PathEscape(id) + "?confirm=true"
			if err := newClient().do(cmd.Context(), http.MethodDelete, path, nil, nil); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", id)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")
	return cmd
}

func balanceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "balance",
		Short: "Show totals and recent activity",
		RunE: func(cmd *cobra.Command, args []string) error {
			var d dto.DashboardResponse
			if err := newClient().do(cmd.Context(), http.MethodGet, "/dashboard", nil, &d); err != nil {
				return err
			}
			if rawJSON {
				return printJSON(cmd.OutOrStdout(), d)
			}
			w := cmd.OutOrStdout()
			printSummary(w, d.Summary)
			if len(d.Recent) > 0 {
				fmt.Fprintln(w)
				printTransactions(w, d.Recent)
			}
			return nil
		},
	}
}

func historyCmd() *cobra.Command {
	var txType, category, dateRange string

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List transactions matching a filter",
		RunE: func(cmd *cobra.Command, args []string) error {
			q := url.Values{}
			if txType != "" {
				q.Set("type", txType)
			}
			if category != "" {
				q.Set("category", category)
			}
			if dateRange != "" {
				q.Set("range", dateRange)
			}
			path := "/history"
			if len(q) > 0 {
				path += "?" + q.Encode()
			}

			var h dto.HistoryResponse
			if err := newClient().do(cmd.Context(), http.MethodGet, path, nil, &h); err != nil {
				return err
			}
			if rawJSON {
				return printJSON(cmd.OutOrStdout(), h)
			}
			printTransactions(cmd.OutOrStdout(), h.Items)
			fmt.Fprintf(cmd.OutOrStdout(), "%d transaction(s)\n", h.Count)
			return nil
		},
	}
	cmd.Flags().StringVar(&txType, "type", "", "ALL, INCOME or EXPENSE")
	cmd.Flags().StringVar(&category, "category", "", "Category name or ALL")
	cmd.Flags().StringVar(&dateRange, "range", "", "ALL, TODAY, WEEK or MONTH")
	return cmd
}

func reportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "report",
		Short: "Show category and monthly breakdowns",
		RunE: func(cmd *cobra.Command, args []string) error {
			var r dto.ReportResponse
			if err := newClient().do(cmd.Context(), http.MethodGet, "/reports", nil, &r); err != nil {
				return err
			}
			if rawJSON {
				return printJSON(cmd.OutOrStdout(), r)
			}

			w := cmd.OutOrStdout()
			printSummary(w, r.Summary)

			tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "\nEXPENSE CATEGORY\tAMOUNT")
			for _, c := range r.Expenses {
				fmt.Fprintf(tw, "%s\t%s\n", c.Category, c.Amount.StringFixed(2))
			}
			fmt.Fprintln(tw, "\nMONTH\tINCOME\tEXPENSE")
			for _, m := range r.Trend {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", m.Label, m.Income.StringFixed(2), m.Expense.StringFixed(2))
			}
			return tw.Flush()
		},
	}
}

func insightsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "insights",
		Short: "Ask for spending insights (Ctrl+C cancels)",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			fmt.Fprintln(cmd.ErrOrStderr(), "Analyzing...")

			var in dto.InsightResponse
			err := newClient().do(ctx, http.MethodGet, "/insights", nil, &in)
			if errors.Is(err, context.Canceled) {
				fmt.Fprintln(cmd.OutOrStdout(), "Cancelled")
				return nil
			}
			if err != nil {
				return err
			}
			if rawJSON {
				return printJSON(cmd.OutOrStdout(), in)
			}
			fmt.Fprintln(cmd.OutOrStdout(), in.Text)
			return nil
		},
	}
}

func tipsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tips",
		Short: "Show money tips",
		RunE: func(cmd *cobra.Command, args []string) error {
			var tips dto.TipsResponse
			if err := newClient().do(cmd.Context(), http.MethodGet, "/tips", nil, &tips); err != nil {
				return err
			}
			if rawJSON {
				return printJSON(cmd.OutOrStdout(), tips)
			}
			w := cmd.OutOrStdout()
			for i, t := range tips.Tips {
				fmt.Fprintf(w, "%d. %s\n   %s\n", i+1, t.Title, t.Content)
			}
			return nil
		},
	}
}

func onboardCmd() *cobra.Command {
	var req dto.OnboardRequest

	cmd := &cobra.Command{
		Use:   "onboard",
		Short: "Create the local profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			var p dto.ProfileResponse
			if err := newClient().do(cmd.Context(), http.MethodPost, "/profile", req, &p); err != nil {
				return err
			}
			if rawJSON {
				return printJSON(cmd.OutOrStdout(), p)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Welcome, %s\n", p.Name)
			return nil
		},
	}
	cmd.Flags().StringVar(&req.Name, "name", "", "Your name")
	cmd.Flags().StringVar(&req.Language, "language", "", "Display language: en or pk")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func confirm(in io.Reader, out io.Writer, prompt string) bool {
	fmt.Fprintf(out, "%s [y/N]: ", prompt)
	line, _ := bufio.NewReader(in).ReadString('\n')
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	}
	return false
}

func printSummary(w io.Writer, s dto.SummaryResponse) {
	fmt.Fprintf(w, "Income:  %s\nExpense: %s\nBalance: %s\n",
		s.Income.StringFixed(2), s.Expense.StringFixed(2), s.Balance.StringFixed(2))
}

func printTransactions(w io.Writer, txs []dto.TransactionResponse) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "DATE\tTYPE\tCATEGORY\tAMOUNT\tNOTE\tID")
	for _, tx := range txs {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			tx.Date, tx.Type, tx.Category, tx.Amount.StringFixed(2), truncate(tx.Note, 24), tx.ID)
	}
	_ = tw.Flush()
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}
