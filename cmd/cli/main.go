package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var (
	baseURL string
	timeout time.Duration
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "gobudget-cli",
		Short: "GoBudget CLI tool",
		Long:  `A command line interface for interacting with the GoBudget API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the GoBudget API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")

	rootCmd.AddCommand(incomeCmd(), expenseCmd(), limitCmd(), budgetCmd(), reportCmd(), predictCmd(), exportCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func incomeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "income",
		Short: "Income operations",
	}

	var amount, date string
	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Record an income",
		Run: func(cmd *cobra.Command, args []string) {
			postEntry("/api/v1/incomes", map[string]any{
				"amount": json.Number(amount),
				"date":   date,
			})
		},
	}
	addCmd.Flags().StringVar(&amount, "amount", "", "Income amount")
	addCmd.Flags().StringVar(&date, "date", time.Now().UTC().Format(time.RFC3339), "Income date (RFC 3339)")
	addCmd.MarkFlagRequired("amount")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List incomes",
		Run: func(cmd *cobra.Command, args []string) {
			getAndPrint("/api/v1/incomes")
		},
	}

	rmCmd := &cobra.Command{
		Use:   "rm <id>",
		Short: "Remove an income by id",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			deleteEntry("/api/v1/incomes/" + args[0])
		},
	}

	cmd.AddCommand(addCmd, listCmd, rmCmd)
	return cmd
}

func expenseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "expense",
		Short: "Expense operations",
	}

	var amount, category, date string
	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Record an expense",
		Run: func(cmd *cobra.Command, args []string) {
			postEntry("/api/v1/expenses", map[string]any{
				"amount":   json.Number(amount),
				"category": category,
				"date":     date,
			})
		},
	}
	addCmd.Flags().StringVar(&amount, "amount", "", "Expense amount")
	addCmd.Flags().StringVar(&category, "category", "Other", "Expense category (Food, Transport, Entertainment, Bills, Other)")
	addCmd.Flags().StringVar(&date, "date", time.Now().UTC().Format(time.RFC3339), "Expense date (RFC 3339)")
	addCmd.MarkFlagRequired("amount")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List expenses",
		Run: func(cmd *cobra.Command, args []string) {
			getAndPrint("/api/v1/expenses")
		},
	}

	rmCmd := &cobra.Command{
		Use:   "rm <id>",
		Short: "Remove an expense by id",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			deleteEntry("/api/v1/expenses/" + args[0])
		},
	}

	cmd.AddCommand(addCmd, listCmd, rmCmd)
	return cmd
}

func limitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "limit",
		Short: "Monthly limit operations",
	}

	setCmd := &cobra.Command{
		Use:   "set <amount>",
		Short: "Set the monthly limit",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			putEntry("/api/v1/limit", map[string]any{"amount": json.Number(args[0])})
		},
	}

	getCmd := &cobra.Command{
		Use:   "get",
		Short: "Show the monthly limit",
		Run: func(cmd *cobra.Command, args []string) {
			getAndPrint("/api/v1/limit")
		},
	}

	cmd.AddCommand(setCmd, getCmd)
	return cmd
}

func budgetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "budget",
		Short: "Show the current month summary",
		Run: func(cmd *cobra.Command, args []string) {
			getAndPrint("/api/v1/budget")
		},
	}
}

func reportCmd() *cobra.Command {
	var mode, start, end string
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Generate a report",
		Run: func(cmd *cobra.Command, args []string) {
			query := url.Values{"mode": {mode}}
			if start != "" {
				query.Set("start", start)
			}
			if end != "" {
				query.Set("end", end)
			}

			body := get("/api/v1/reports?" + query.Encode())
			var resp struct {
				Report string `json:"report"`
			}
			if err := json.Unmarshal(body, &resp); err != nil {
				fmt.Printf("Failed to parse response: %v\n", err)
				os.Exit(1)
			}
			fmt.Println(resp.Report)
		},
	}
	cmd.Flags().StringVar(&mode, "mode", "category", "Report mode (category, date)")
	cmd.Flags().StringVar(&start, "start", "", "Range start (RFC 3339 or YYYY-MM-DD)")
	cmd.Flags().StringVar(&end, "end", "", "Range end (RFC 3339 or YYYY-MM-DD)")
	return cmd
}

func predictCmd() *cobra.Command {
	var mode string
	cmd := &cobra.Command{
		Use:   "predict",
		Short: "Predict next month's expenses",
		Run: func(cmd *cobra.Command, args []string) {
			getAndPrint("/api/v1/predictions?mode=" + url.QueryEscape(mode))
		},
	}
	cmd.Flags().StringVar(&mode, "mode", "average", "Prediction mode (average, lastMonth)")
	return cmd
}

func exportCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export recorded data",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(string(get("/api/v1/exports?format=" + url.QueryEscape(format))))
		},
	}
	cmd.Flags().StringVar(&format, "format", "json", "Export format (csv, json, xml)")
	return cmd
}

func get(path string) []byte {
	client := &http.Client{Timeout: timeout}
	resp, err := client.Get(baseURL + path)
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		fmt.Printf("Request failed (Status: %d)\nResponse: %s\n", resp.StatusCode, string(body))
		os.Exit(1)
	}
	return body
}

func getAndPrint(path string) {
	printJSON(get(path))
}

func postEntry(path string, payload map[string]any) {
	sendJSON(http.MethodPost, path, payload, http.StatusCreated)
}

func putEntry(path string, payload map[string]any) {
	sendJSON(http.MethodPut, path, payload, http.StatusOK)
}

func sendJSON(method, path string, payload map[string]any, wantStatus int) {
	data, _ := json.Marshal(payload)

	req, err := http.NewRequest(method, baseURL+path, bytes.NewReader(data))
	if err != nil {
		fmt.Printf("Error building request: %v\n", err)
		os.Exit(1)
	}
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{Timeout: timeout}
	resp, err := client.Do(req)
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != wantStatus {
		fmt.Printf("Request failed (Status: %d)\nResponse: %s\n", resp.StatusCode, string(body))
		os.Exit(1)
	}
	printJSON(body)
}

func deleteEntry(path string) {
	req, err := http.NewRequest(http.MethodDelete, baseURL+path, nil)
	if err != nil {
		fmt.Printf("Error building request: %v\n", err)
		os.Exit(1)
	}

	client := &http.Client{Timeout: timeout}
	resp, err := client.Do(req)
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNoContent {
		body, _ := io.ReadAll(resp.Body)
		fmt.Printf("Request failed (Status: %d)\nResponse: %s\n", resp.StatusCode, string(body))
		os.Exit(1)
	}
	fmt.Println("OK")
}

func printJSON(body []byte) {
	var buf bytes.Buffer
	if err := json.Indent(&buf, body, "", "  "); err != nil {
		fmt.Println(string(body))
		return
	}
	fmt.Println(buf.String())
}
