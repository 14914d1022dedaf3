package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"

	"resorg/internal/faults"
	"resorg/internal/placement"
	"resorg/internal/summary"
)

var actionOrder = []placement.Action{
	placement.ActionCopied,
	placement.ActionMoved,
	placement.ActionUnchanged,
	placement.ActionPlanned,
}

func writeReport(out io.Writer, results []placement.Result, runErr error, colorize bool) {
	if len(results) > 0 {
		fmt.Fprintln(out, renderPlacementTable(results))
	}
	kind, message := statusOK, summarizeActions(results)
	if runErr != nil {
		kind = statusError
		message = fmt.Sprintf("%s; %s error", message, faults.Kind(runErr))
	}
	fmt.Fprintln(out, renderStatusLine("Placement", kind, message, colorize))
}

func renderPlacementTable(results []placement.Result) string {
	rows := make([][]string, 0, len(results))
	for _, res := range results {
		rows = append(rows, []string{
			res.Record.Name,
			res.Record.Year,
			string(res.Action),
			humanize.IBytes(uint64(res.Bytes)),
			res.Target,
		})
	}
	return tableSpec{
		headers: []string{"Reservoir", "Year", "Action", "Size", "Target"},
		aligns:  []columnAlignment{alignLeft, alignRight, alignLeft, alignRight, alignLeft},
		rows:    rows,
	}.render()
}

func renderListingTable(entries []summary.Entry) string {
	rows := make([][]string, 0, len(entries))
	var total uint64
	for _, entry := range entries {
		rows = append(rows, []string{entry.Path, humanize.IBytes(uint64(entry.Size))})
		total += uint64(entry.Size)
	}
	return tableSpec{
		headers: []string{"Path", "Size"},
		aligns:  []columnAlignment{alignLeft, alignRight},
		rows:    rows,
		footer:  []string{fmt.Sprintf("%d files", len(entries)), humanize.IBytes(total)},
	}.render()
}

func summarizeActions(results []placement.Result) string {
	if len(results) == 0 {
		return "no files placed"
	}
	counts := make(map[placement.Action]int, len(actionOrder))
	for _, res := range results {
		counts[res.Action]++
	}
	parts := make([]string, 0, len(actionOrder))
	for _, action := range actionOrder {
		if n := counts[action]; n > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", n, action))
		}
	}
	return strings.Join(parts, ", ")
}
