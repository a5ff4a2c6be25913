package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/lzjever/chimpgate/internal/core"
)

// Gateway is a minimal chimpgate HTTP client.
type Gateway struct {
	baseURL string
	http    *http.Client
}

func NewGateway(baseURL string) *Gateway {
	return &Gateway{baseURL: baseURL, http: &http.Client{Timeout: 30 * time.Second}}
}

func (g *Gateway) Get(path string, out interface{}) error {
	resp, err := g.http.Get(g.baseURL + path)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	return parseResponse(resp, out)
}

func (g *Gateway) Delete(path string, out interface{}) error {
	req, err := http.NewRequest(http.MethodDelete, g.baseURL+path, nil)
	if err != nil {
		return err
	}
	resp, err := g.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	return parseResponse(resp, out)
}

func parseResponse(resp *http.Response, out interface{}) error {
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode >= 400 {
		var errResp struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		}
		if err := json.Unmarshal(b, &errResp); err != nil || errResp.Code == "" {
			return fmt.Errorf("gateway answered %s", resp.Status)
		}
		return fmt.Errorf("%s: %s", errResp.Code, errResp.Message)
	}
	if out != nil && len(b) > 0 {
		return json.Unmarshal(b, out)
	}
	return nil
}

type AccountListResponse struct {
	Accounts   []core.Account `json:"accounts"`
	NextCursor string         `json:"next_cursor"`
}

var accountsCmd = &cobra.Command{
	Use:     "accounts",
	Aliases: []string{"account"},
	Short:   "Accounts authorized through chimpgate",
}

var accountsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List accounts",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		q := url.Values{}
		if c := viper.GetString("cursor"); c != "" {
			q.Set("cursor", c)
		}
		var resp AccountListResponse
		if err := NewGateway(viper.GetString("gateway-url")).Get("/v1/accounts?"+q.Encode(), &resp); err != nil {
			return err
		}
		return printResult(resp.Accounts)
	},
}

var accountsGetCmd = &cobra.Command{
	Use:   "get <account-id>",
	Short: "Get account details",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var acc core.Account
		if err := NewGateway(viper.GetString("gateway-url")).Get("/v1/accounts/"+url.PathEscape(args[0]), &acc); err != nil {
			return err
		}
		return printResult(acc)
	},
}

var accountsDeleteCmd = &cobra.Command{
	Use:   "delete <account-id>",
	Short: "Forget an account and its API key",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := NewGateway(viper.GetString("gateway-url")).Delete("/v1/accounts/"+url.PathEscape(args[0]), nil); err != nil {
			return err
		}
		fmt.Printf("Account %s deleted.\n", args[0])
		return nil
	},
}

var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "List recent remote calls made through chimpgate",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		q := url.Values{}
		if id := viper.GetString("account"); id != "" {
			q.Set("account_id", id)
		}
		var resp struct {
			Events []core.AuditEvent `json:"events"`
		}
		if err := NewGateway(viper.GetString("gateway-url")).Get("/v1/audit?"+q.Encode(), &resp); err != nil {
			return err
		}
		return printResult(resp.Events)
	},
}

func init() {
	accountsListCmd.Flags().String("cursor", "", "pagination cursor")
	auditCmd.Flags().String("account", "", "only calls made for this account id")
	accountsCmd.AddCommand(accountsListCmd, accountsGetCmd, accountsDeleteCmd)
	rootCmd.AddCommand(accountsCmd, auditCmd)
}
