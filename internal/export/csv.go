package export

import (
	"context"
	"encoding/csv"
	"io"
)

type CSVWriter struct{}

func (CSVWriter) Format() string      { return "csv" }
func (CSVWriter) ContentType() string { return "text/csv" }
func (CSVWriter) Extension() string   { return "csv" }

func (CSVWriter) Write(ctx context.Context, w io.Writer, doc Document) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(doc.Headers); err != nil {
		return err
	}
	for _, r := range doc.Rows {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := cw.Write(doc.Strings(r)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
