package extract

// Layout describes where the expected columns sit inside a table region
// of the supported invoice layout family. Column indices are 0-based.
type Layout struct {
	// MinColumns is the minimum row width; shorter rows cannot contain
	// the expected layout and are discarded.
	MinColumns int

	// HeaderCol and HeaderMarker identify header rows: a row whose
	// HeaderCol cell contains the marker is a column-title row.
	HeaderCol    int
	HeaderMarker string

	// CodeCol holds the candidate item code, QuantityCol the shipped
	// quantity, AmountCol the line total.
	CodeCol     int
	QuantityCol int
	AmountCol   int
}

// DefaultLayout matches the known vendor invoice layout: eleven-column
// item grid with the code in the second column, quantity in the eighth
// and line total in the tenth.
func DefaultLayout() Layout {
	return Layout{
		MinColumns:   10,
		HeaderCol:    0,
		HeaderMarker: "#",
		CodeCol:      1,
		QuantityCol:  7,
		AmountCol:    9,
	}
}
