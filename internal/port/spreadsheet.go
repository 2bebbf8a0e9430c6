package port

import "encoding/json"

// SpreadsheetProcessor turns spreadsheet bytes into the pre-structured
// payload shape: one invoices row (carrying productName) per products row,
// plus any customers rows. The payload is JSON so it crosses the same
// boundary as model output.
type SpreadsheetProcessor interface {
	Process(data []byte) (json.RawMessage, error)
}
