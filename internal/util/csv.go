package util

import (
	"bytes"
	"encoding/csv"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/fadilmartias/lead-scorer/internal/apperror"
	"github.com/fadilmartias/lead-scorer/internal/model"
	"github.com/jszwec/csvutil"
	"github.com/rotisserie/eris"
)

const utf8BOM = "\ufeff"

// ExtractLeadsCSV parses the lead file at path. It yields every lead or fails
// with *apperror.ParseError; it never returns a partial batch.
func ExtractLeadsCSV(path string) ([]model.Lead, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, apperror.NewParseError(eris.Wrap(err, "open upload"))
	}
	defer f.Close()
	return ParseLeadsCSV(f)
}

// ParseLeadsCSV decodes rows into leads. Header names are matched
// case-insensitively, missing columns stay empty and unknown columns are ignored.
func ParseLeadsCSV(r io.Reader) ([]model.Lead, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return []model.Lead{}, nil
	}
	if err != nil {
		return nil, apperror.NewParseError(eris.Wrap(err, "csv: read header"))
	}
	for i, h := range header {
		header[i] = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, utf8BOM)))
	}

	dec, err := csvutil.NewDecoder(&paddedReader{r: reader, width: len(header)}, header...)
	if err != nil {
		return nil, apperror.NewParseError(eris.Wrap(err, "csv: init decoder"))
	}

	leads := []model.Lead{}
	for {
		var lead model.Lead
		err := dec.Decode(&lead)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, apperror.NewParseError(eris.Wrap(err, "csv: read row"))
		}
		leads = append(leads, trimLead(lead))
	}
	return leads, nil
}

// paddedReader squares ragged rows up to the header width so short rows
// decode with empty trailing fields instead of failing.
type paddedReader struct {
	r     *csv.Reader
	width int
}

func (p *paddedReader) Read() ([]string, error) {
	record, err := p.r.Read()
	if err != nil {
		return nil, err
	}
	switch {
	case len(record) < p.width:
		record = append(record, make([]string, p.width-len(record))...)
	case len(record) > p.width:
		record = record[:p.width]
	}
	return record, nil
}

func trimLead(l model.Lead) model.Lead {
	return model.Lead{
		Name:        strings.TrimSpace(l.Name),
		Role:        strings.TrimSpace(l.Role),
		Company:     strings.TrimSpace(l.Company),
		Industry:    strings.TrimSpace(l.Industry),
		Location:    strings.TrimSpace(l.Location),
		LinkedInBio: strings.TrimSpace(l.LinkedInBio),
	}
}

// EncodeResultsCSV renders results with the header
// name,role,company,intent,score,reasoning, one row per result in order.
func EncodeResultsCSV(results []model.Result) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	enc := csvutil.NewEncoder(w)
	enc.AutoHeader = false

	if err := enc.EncodeHeader(model.Result{}); err != nil {
		return nil, eris.Wrap(err, "csv: write header")
	}
	for _, r := range results {
		if err := enc.Encode(r); err != nil {
			return nil, eris.Wrap(err, "csv: write row")
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, eris.Wrap(err, "csv: flush")
	}
	return buf.Bytes(), nil
}
