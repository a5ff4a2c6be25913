package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/lzjever/chimpgate/internal/catalog"
	"github.com/lzjever/chimpgate/internal/core"
)

func printResult(v interface{}) error {
	switch viper.GetString("output") {
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		return printYAML(v)
	}
	printTable(v)
	return nil
}

// printYAML goes through JSON first so json tags and raw remote answers
// come out the same as with -o json.
func printYAML(v interface{}) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	var plain interface{}
	if err := json.Unmarshal(b, &plain); err != nil {
		return err
	}
	enc := yaml.NewEncoder(os.Stdout)
	enc.SetIndent(2)
	defer enc.Close()
	return enc.Encode(plain)
}

func printTable(v interface{}) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	switch data := v.(type) {
	case []APIRow:
		fmt.Fprintln(w, "API\tTITLE\tDEFAULT\tVERSIONS")
		for _, a := range data {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", a.API, a.Title, a.DefaultVersion, strings.Join(a.Versions, ", "))
		}
	case []catalog.Endpoint:
		fmt.Fprintln(w, "METHOD\tPARAMS")
		for _, e := range data {
			fmt.Fprintf(w, "%s\t%s\n", e.Method, strings.Join(e.Params, ", "))
		}
	case []core.Account:
		if len(data) == 0 {
			fmt.Println("No accounts found.")
			return
		}
		fmt.Fprintln(w, "ID\tACCOUNT\tLOGIN EMAIL\tDC\tAPI KEY\tCREATED")
		for _, a := range data {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n", a.ID, truncate(a.AccountName, 30), a.LoginEmail, a.DC, a.APIKey, a.CreatedAt.Format("2006-01-02 15:04"))
		}
	case core.Account:
		fmt.Fprintf(w, "ID:\t%s\n", data.ID)
		fmt.Fprintf(w, "User ID:\t%s\n", data.UserID)
		fmt.Fprintf(w, "Account:\t%s\n", data.AccountName)
		fmt.Fprintf(w, "Login email:\t%s\n", data.LoginEmail)
		fmt.Fprintf(w, "DC:\t%s\n", data.DC)
		fmt.Fprintf(w, "API key:\t%s\n", data.APIKey)
		fmt.Fprintf(w, "API endpoint:\t%s\n", data.APIEndpoint)
		fmt.Fprintf(w, "Created:\t%s\n", data.CreatedAt)
	case []core.AuditEvent:
		if len(data) == 0 {
			fmt.Println("No calls recorded.")
			return
		}
		fmt.Fprintln(w, "TIME\tAPI\tVERSION\tMETHOD\tOUTCOME\tDURATION")
		for _, e := range data {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n", e.Ts.Format("2006-01-02 15:04:05"), e.API, e.Version, e.Method, e.Outcome, e.Duration)
		}
	case AuthedRow:
		fmt.Fprintf(w, "API key:\t%s\n", data.APIKey)
		fmt.Fprintf(w, "DC:\t%s\n", data.DC)
		fmt.Fprintf(w, "Account:\t%s\n", data.AccountName)
		fmt.Fprintf(w, "Login email:\t%s\n", data.LoginEmail)
		fmt.Fprintf(w, "API endpoint:\t%s\n", data.APIEndpoint)
	case json.RawMessage:
		var str string
		if json.Unmarshal(data, &str) == nil {
			fmt.Println(str)
			return
		}
		var buf bytes.Buffer
		if err := json.Indent(&buf, data, "", "  "); err != nil {
			fmt.Println(string(data))
			return
		}
		fmt.Println(buf.String())
		return
	default:
		json.NewEncoder(os.Stdout).Encode(v)
	}
	w.Flush()
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
