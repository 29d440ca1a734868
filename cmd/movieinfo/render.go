package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/mattn/go-isatty"

	"movieinfo/internal/enrich"
	"movieinfo/internal/movies"
	"movieinfo/internal/preflight"
)

const (
	ansiReset = "\x1b[0m"
	ansiRed   = "\x1b[31m"
	ansiGreen = "\x1b[32m"
)

const (
	statusLabelWidth = 20
	statusIndent     = "  "
)

func isTerminal(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func renderSummary(s enrich.Summary) string {
	rows := [][]string{
		{"Run", s.RunID},
		{"Input", s.Input},
		{"Output", s.Output},
		{"Rows read", strconv.Itoa(s.Read)},
		{"Skipped (no title)", strconv.Itoa(s.Skipped)},
		{"Rows written", strconv.Itoa(s.Written)},
		{"Enriched", strconv.Itoa(s.Enriched)},
		{"Partial", strconv.Itoa(s.Partial)},
		{"Not found", strconv.Itoa(s.Empty)},
		{"Failed", strconv.Itoa(s.Failed)},
	}
	for _, reason := range s.ReasonKeys() {
		rows = append(rows, []string{"  " + reason, strconv.Itoa(s.Reasons[reason])})
	}
	rows = append(rows, []string{"Duration", s.Duration.Round(time.Millisecond).String()})
	if s.Aborted {
		rows = append(rows, []string{"Aborted", "yes"})
	}
	return renderTable([]string{"Metric", "Value"}, rows, []columnAlignment{alignLeft, alignRight})
}

func renderRow(row movies.OutputRow) string {
	return renderTable(
		[]string{movies.FieldTitle, movies.FieldYear},
		[][]string{row.Values()},
		[]columnAlignment{alignLeft, alignLeft},
	)
}

func renderCheckLine(r preflight.Result, colorize bool) string {
	label := "FAIL"
	color := ansiRed
	if r.Passed {
		label = "OK"
		color = ansiGreen
	}
	base := fmt.Sprintf("%s%-*s [%s] %s", statusIndent, statusLabelWidth, r.Name+":", label, strings.TrimSpace(r.Detail))
	if colorize {
		return color + base + ansiReset
	}
	return base
}
