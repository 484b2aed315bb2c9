package main

import (
	"encoding/json"
	"strings"

	"github.com/spf13/cobra"
)

var namesCmd = &cobra.Command{
	Use:   "names [query]",
	Short: "Prints the stop code-to-name map, optionally filtered by substring",
	Args:  cobra.MaximumNArgs(1),
	RunE:  names,
}

func init() {
	rootCmd.AddCommand(namesCmd)
}

func names(cmd *cobra.Command, args []string) error {
	nameMap, err := stopSvc.NameMap()
	if err != nil {
		return err
	}

	if len(args) == 1 {
		query := strings.ToLower(args[0])
		matches := make(map[string]string)
		for code, name := range nameMap {
			if strings.Contains(strings.ToLower(name), query) {
				matches[code] = name
			}
		}
		nameMap = matches
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(nameMap)
}
