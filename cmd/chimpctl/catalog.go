package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/lzjever/chimpgate/internal/catalog"
)

type APIRow struct {
	API            string   `json:"api" yaml:"api"`
	Title          string   `json:"title" yaml:"title"`
	DefaultVersion string   `json:"default_version" yaml:"default_version"`
	Versions       []string `json:"versions" yaml:"versions"`
}

var apisCmd = &cobra.Command{
	Use:   "apis",
	Short: "List the supported APIs and versions",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var rows []APIRow
		for _, api := range catalog.APIs() {
			rows = append(rows, APIRow{
				API:            string(api),
				Title:          api.Title(),
				DefaultVersion: catalog.DefaultVersion(api),
				Versions:       catalog.Versions(api),
			})
		}
		return printResult(rows)
	},
}

var methodsCmd = &cobra.Command{
	Use:   "methods <api>",
	Short: "List the methods of an API version and the parameters they accept",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		api, err := catalog.ParseAPI(args[0])
		if err != nil {
			return err
		}
		cat, err := catalog.Get(api, viper.GetString("api-version"))
		if err != nil {
			return err
		}
		return printResult(cat.Endpoints())
	},
}

func init() {
	rootCmd.AddCommand(apisCmd, methodsCmd)
}
