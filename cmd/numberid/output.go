package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/mahdiidarabi/numberid/pkg/numberid"
)

type jsonResult struct {
	Name  string `json:"name"`
	Label string `json:"label,omitempty"`
	Value string `json:"value,omitempty"`
	Error string `json:"error,omitempty"`
}

// writeText prints one "<label>: <value>" line per result. Failures go to
// errOut so that a missing reference file does not hide the other lines.
func writeText(out, errOut io.Writer, results []numberid.Result) {
	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(errOut, "Error: %s: %v\n", r.Name, r.Err)
			continue
		}
		fmt.Fprintln(out, r.Report.String())
	}
}

func writeJSON(out io.Writer, results []numberid.Result) error {
	items := make([]jsonResult, 0, len(results))
	for _, r := range results {
		item := jsonResult{Name: r.Name}
		if r.Err != nil {
			item.Error = r.Err.Error()
		} else {
			item.Label = r.Report.Label
			item.Value = r.Report.Value
		}
		items = append(items, item)
	}

	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(items); err != nil {
		return fmt.Errorf("failed to write JSON: %w", err)
	}
	return nil
}
