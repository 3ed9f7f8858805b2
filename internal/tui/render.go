package tui

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/rshade/houselist/internal/currency"
	"github.com/rshade/houselist/internal/listing"
)

// Tabwriter settings for plain output.
const (
	tabMinWidth = 0
	tabWidth    = 4
	tabPadding  = 2
)

// RenderPlain writes an unstyled view of records: title, column headers, one
// line per HouseRow and the Add House control.
func RenderPlain(w io.Writer, title string, records []listing.Record, f currency.Formatter) error {
	if title == "" {
		title = DefaultTitle
	}

	var sb strings.Builder
	sb.WriteString(title + "\n\n")

	tw := tabwriter.NewWriter(&sb, tabMinWidth, tabWidth, tabPadding, ' ', 0)
	fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", ColumnID, ColumnAddress, ColumnCountry, ColumnPrice)
	for _, row := range HouseRows(records, f) {
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("flushing table: %w", err)
	}

	sb.WriteString("\n[ " + AddHouseLabel + " ]\n")

	if _, err := io.WriteString(w, sb.String()); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}

// RenderJSON writes records as an indented JSON array.
func RenderJSON(w io.Writer, records []listing.Record) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(listing.Clone(records)); err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	return nil
}

// RenderStyled writes the static, styled view of list.
func RenderStyled(w io.Writer, list *HouseList) error {
	if _, err := io.WriteString(w, list.StaticView()+"\n"); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}
