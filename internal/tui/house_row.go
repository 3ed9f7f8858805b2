package tui

import (
	"strconv"

	"github.com/charmbracelet/bubbles/table"

	"github.com/rshade/houselist/internal/currency"
	"github.com/rshade/houselist/internal/listing"
)

// Column titles of the listing table, in display order.
const (
	ColumnID      = "ID"
	ColumnAddress = "Address"
	ColumnCountry = "Country"
	ColumnPrice   = "Asking Price"
)

// Column widths.
const (
	idColumnWidth      = 4
	addressColumnWidth = 32
	countryColumnWidth = 16
	priceColumnWidth   = 16
)

// HouseColumns returns the column layout of the listing table.
func HouseColumns() []table.Column {
	return []table.Column{
		{Title: ColumnID, Width: idColumnWidth},
		{Title: ColumnAddress, Width: addressColumnWidth},
		{Title: ColumnCountry, Width: countryColumnWidth},
		{Title: ColumnPrice, Width: priceColumnWidth},
	}
}

// HouseRow renders one record as a table row: ID, address, country and the
// price as formatted by f. It has no side effects and keeps no reference to house.
func HouseRow(house listing.Record, f currency.Formatter) table.Row {
	return table.Row{
		strconv.Itoa(house.ID),
		house.Address,
		house.Country,
		f.Format(house.Price),
	}
}

// HouseRows maps HouseRow over records, preserving order.
func HouseRows(records []listing.Record, f currency.Formatter) []table.Row {
	rows := make([]table.Row, len(records))
	for i, r := range records {
		rows[i] = HouseRow(r, f)
	}
	return rows
}
