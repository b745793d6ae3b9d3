// Package display renders duplicate reports for the terminal and for
// machine consumption (yaml, json).
package display

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/pterm/pterm"
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/springclean/pkg/errors"
	"github.com/arthur-debert/springclean/pkg/style"
)

// Format selects the report output format.
type Format string

const (
	FormatText Format = "text"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// ParseFormat validates a --format flag value.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatText, FormatYAML, FormatJSON:
		return Format(s), nil
	default:
		return "", errors.Newf(errors.ErrInvalidInput,
			"unknown format %q (expected text, yaml, or json)", s)
	}
}

// Report is the user-facing summary of one inspection or repair.
type Report struct {
	LayoutPath string         `yaml:"layout" json:"layout"`
	Duplicates map[string]int `yaml:"duplicates" json:"duplicates"`
	Outcome    string         `yaml:"outcome,omitempty" json:"outcome,omitempty"`
	BackupPath string         `yaml:"backup,omitempty" json:"backup,omitempty"`
}

// Clean reports whether no duplicates were found.
func (r *Report) Clean() bool {
	return len(r.Duplicates) == 0
}

// Render writes the report in the requested format.
func (r *Report) Render(w io.Writer, format Format) error {
	switch format {
	case FormatYAML:
		return yaml.NewEncoder(w).Encode(r)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	default:
		return r.renderText(w)
	}
}

func (r *Report) renderText(w io.Writer) error {
	fmt.Fprintln(w, style.TitleStyle.Render("Layout:"), style.PathStyle.Render(r.LayoutPath))

	if r.Clean() {
		fmt.Fprintln(w, style.SuccessStyle.Render("No duplicate icons found."))
	} else {
		fmt.Fprintln(w, style.WarningStyle.Render(
			fmt.Sprintf("%d duplicated identifier(s):", len(r.Duplicates))))

		data := pterm.TableData{{"Identifier", "Occurrences"}}
		for _, id := range sortedIdentifiers(r.Duplicates) {
			data = append(data, []string{
				style.IdentifierStyle.Render(id),
				fmt.Sprintf("%d", r.Duplicates[id]),
			})
		}
		table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
		if err != nil {
			return errors.Wrap(err, errors.ErrInternal, "failed to render table")
		}
		fmt.Fprintln(w, table)
	}

	if r.Outcome != "" {
		fmt.Fprintln(w, style.MutedStyle.Render("outcome: "+r.Outcome))
	}
	if r.BackupPath != "" {
		fmt.Fprintln(w, style.MutedStyle.Render("backup: "+r.BackupPath))
	}
	return nil
}

func sortedIdentifiers(dupes map[string]int) []string {
	ids := make([]string, 0, len(dupes))
	for id := range dupes {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
