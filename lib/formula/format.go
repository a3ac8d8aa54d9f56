package formula

import "strconv"

// CellFormat controls display formatting of a computed or numeric value.
// Formatting never alters the stored numeric result.
type CellFormat struct {
	Currency string `json:"currency,omitempty"`
	Decimals *int   `json:"decimals,omitempty"`
}

var currencySymbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"JPY": "¥",
}

// FormatValue renders a numeric result for display. Without a format the
// value is printed with the shortest exact representation; a format applies
// fixed decimals and a currency prefix.
func FormatValue(v float64, format *CellFormat) string {
	if format == nil {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}

	decimals := -1
	if format.Decimals != nil {
		decimals = *format.Decimals
	}
	text := strconv.FormatFloat(v, 'f', decimals, 64)

	if format.Currency == "" {
		return text
	}
	if symbol, ok := currencySymbols[format.Currency]; ok {
		return symbol + text
	}
	return format.Currency + " " + text
}

// Display renders an evaluation outcome: the formatted value on success, the
// short error token on failure.
func Display(v float64, err error, format *CellFormat) string {
	if err != nil {
		return DisplayToken(err)
	}
	return FormatValue(v, format)
}
