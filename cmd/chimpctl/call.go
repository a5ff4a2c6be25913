package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/lzjever/chimpgate/internal/catalog"
	"github.com/lzjever/chimpgate/internal/form"
)

var (
	callParams     []string
	callParamsJSON string
)

var callCmd = &cobra.Command{
	Use:   "call <api> <method>",
	Short: "Call a remote API method",
	Long: `Call a remote API method. The method is either its plain name (lists,
listMemberInfo) or section/method as in lists/member-info.

Parameters given with -p are parsed as JSON when they are valid JSON and taken
as strings otherwise; they override --params-json.`,
	Example: `  chimpctl call mailchimp lists
  chimpctl call mailchimp lists/subscribe --api-version 2.0 -p id=abc -p 'email={"email":"a@b.c"}'
  chimpctl call mandrill users/ping --api-key <mandrill key>`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		api, err := catalog.ParseAPI(args[0])
		if err != nil {
			return err
		}
		params, err := parseParams(callParamsJSON, callParams)
		if err != nil {
			return err
		}
		cl, err := newAPIClient(api)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		var result json.RawMessage
		if section, method, ok := strings.Cut(args[1], "/"); ok {
			err = cl.Call(ctx, section, method, params, &result)
		} else {
			err = cl.Execute(ctx, args[1], params, &result)
		}
		if err != nil {
			return err
		}
		return printResult(result)
	},
}

var serializeCmd = &cobra.Command{
	Use:   "serialize <json>",
	Short: "Print the bracket form encoding of a JSON document",
	Example: `  chimpctl serialize '{"message":{"subject":"Hi","to_email":["a@b.c"]}}'
  message[subject]=Hi&message[to_email][0]=a%40b.c`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		value, err := decodeJSON(args[0])
		if err != nil {
			return fmt.Errorf("invalid JSON: %w", err)
		}
		fmt.Println(form.Serialize(value, ""))
		return nil
	},
}

// parseParams merges a JSON object with key=value pairs.
func parseParams(doc string, pairs []string) (map[string]any, error) {
	params := map[string]any{}
	if doc != "" {
		v, err := decodeJSON(doc)
		if err != nil {
			return nil, fmt.Errorf("invalid --params-json: %w", err)
		}
		obj, ok := v.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("--params-json must be a JSON object")
		}
		params = obj
	}
	for _, p := range pairs {
		k, raw, ok := strings.Cut(p, "=")
		if !ok || k == "" {
			return nil, fmt.Errorf("parameter %q is not of the form key=value", p)
		}
		if v, err := decodeJSON(raw); err == nil {
			params[k] = v
		} else {
			params[k] = raw
		}
	}
	return params, nil
}

func decodeJSON(s string) (any, error) {
	dec := json.NewDecoder(bytes.NewReader([]byte(s)))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	if dec.More() {
		return nil, fmt.Errorf("trailing data after JSON value")
	}
	return v, nil
}

func init() {
	callCmd.Flags().StringArrayVarP(&callParams, "param", "p", nil, "parameter as key=value (repeatable)")
	callCmd.Flags().StringVar(&callParamsJSON, "params-json", "", "parameters as one JSON object")
	rootCmd.AddCommand(callCmd, serializeCmd)
}
