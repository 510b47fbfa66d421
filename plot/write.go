package plot

import (
	"encoding/json"
	"os"
)

// WriteJSON marshals a document (indented, stable field order) and
// writes it to path.
//
// Errors: ErrNilDocument plus wrapped marshal and I/O failures.
func WriteJSON(path string, doc *Document) error {
	if doc == nil {
		return ErrNilDocument
	}
	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(raw, '\n'), 0o644)
}
