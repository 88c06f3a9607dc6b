package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var (
	baseURL string
	token   string
	timeout time.Duration
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "gobank-cli",
		Short: "GoBank CLI tool",
		Long:  `A command line interface for interacting with the GoBank API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the GoBank API")
	rootCmd.PersistentFlags().StringVar(&token, "token", "", "Bearer token from 'login'")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")

	rootCmd.AddCommand(
		registerCmd(),
		loginCmd(),
		accountCmd(),
		depositCmd(),
		withdrawCmd(),
		historyCmd(),
		statementCmd(),
	)

	return rootCmd
}

func registerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "register USERNAME PASSWORD",
		Short: "Register a new user",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return request(http.MethodPost, "/api/v1/auth/register", map[string]string{
				"username": args[0],
				"password": args[1],
			})
		},
	}
}

func loginCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "login USERNAME PASSWORD",
		Short: "Log in and print an access token",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return request(http.MethodPost, "/api/v1/auth/login", map[string]string{
				"username": args[0],
				"password": args[1],
			})
		},
	}
}

func accountCmd() *cobra.Command {
	accountCmd := &cobra.Command{
		Use:   "account",
		Short: "Account operations",
	}

	var accountType string
	var deposit string
	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Open a new account",
		RunE: func(cmd *cobra.Command, args []string) error {
			return request(http.MethodPost, "/api/v1/accounts", map[string]string{
				"account_type":    accountType,
				"initial_deposit": deposit,
			})
		},
	}
	createCmd.Flags().StringVar(&accountType, "type", "checking", "Account type (savings or checking)")
	createCmd.Flags().StringVar(&deposit, "deposit", "", "Initial deposit amount")

	getCmd := &cobra.Command{
		Use:   "get NUMBER",
		Short: "Show one account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return request(http.MethodGet, "/api/v1/accounts/"+args[0], nil)
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List your accounts",
		RunE: func(cmd *cobra.Command, args []string) error {
			return request(http.MethodGet, "/api/v1/accounts", nil)
		},
	}

	accountCmd.AddCommand(createCmd, getCmd, listCmd)
	return accountCmd
}

func depositCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "deposit NUMBER AMOUNT",
		Short: "Deposit into an account",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return request(http.MethodPost, "/api/v1/accounts/"+args[0]+"/deposit", map[string]string{
				"amount": args[1],
			})
		},
	}
}

func withdrawCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "withdraw NUMBER AMOUNT",
		Short: "Withdraw from an account",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return request(http.MethodPost, "/api/v1/accounts/"+args[0]+"/withdraw", map[string]string{
				"amount": args[1],
			})
		},
	}
}

func historyCmd() *cobra.Command {
	var start, end string
	cmd := &cobra.Command{
		Use:   "history NUMBER",
		Short: "Show an account's ledger",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return request(http.MethodGet, "/api/v1/accounts/"+args[0]+"/history"+rangeQuery(start, end), nil)
		},
	}
	cmd.Flags().StringVar(&start, "start", "", "Range start (RFC 3339)")
	cmd.Flags().StringVar(&end, "end", "", "Range end (RFC 3339)")
	return cmd
}

func statementCmd() *cobra.Command {
	var start, end string
	cmd := &cobra.Command{
		Use:   "statement NUMBER",
		Short: "Generate an account statement",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return request(http.MethodGet, "/api/v1/accounts/"+args[0]+"/statement"+rangeQuery(start, end), nil)
		},
	}
	cmd.Flags().StringVar(&start, "start", "", "Statement start (RFC 3339)")
	cmd.Flags().StringVar(&end, "end", "", "Statement end (RFC 3339)")
	return cmd
}

// rangeQuery builds the ?start=..&end=.. suffix, omitting empty bounds.
func rangeQuery(start, end string) string {
	q := ""
	if start != "" {
		q = "?start=" + start
	}
	if end != "" {
		if q == "" {
			q = "?end=" + end
		} else {
			q += "&end=" + end
		}
	}
	return q
}

// request performs the HTTP call and pretty-prints the JSON response.
func request(method, path string, payload any) error {
	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequest(method, baseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	client := &http.Client{Timeout: timeout}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	printJSON(raw)

	if resp.StatusCode >= 400 {
		return fmt.Errorf("request failed with status %d", resp.StatusCode)
	}
	return nil
}

// printJSON re-indents the raw response; non-JSON bodies print as-is.
func printJSON(raw []byte) {
	var pretty bytes.Buffer
	if err := json.Indent(&pretty, raw, "", "  "); err != nil {
		fmt.Println(string(raw))
		return
	}
	fmt.Println(pretty.String())
}
