package repository

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/healthy-campus/hurs/pkg/domain/model"
	"github.com/healthy-campus/hurs/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// csvHeader is the fixed five-column schema of the score table
var csvHeader = []string{"Assessor", "Item", "Group", "Score", "Comments"}

// encodeRatings serializes ratings to the flat table encoding, header
// included. Quoting of delimiters and quote characters is handled by the
// writer per RFC 4180.
func encodeRatings(records []model.Rating) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvHeader); err != nil {
		return nil, goerr.Wrap(err, "failed to write CSV header")
	}
	for _, r := range records {
		row := []string{
			r.Assessor.String(),
			r.Item.String(),
			r.Group.String(),
			strconv.Itoa(r.Score),
			r.Comment,
		}
		if err := w.Write(row); err != nil {
			return nil, goerr.Wrap(err, "failed to write CSV row")
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, goerr.Wrap(err, "failed to flush CSV")
	}

	return buf.Bytes(), nil
}

// ParseTable parses the flat table encoding back into ratings. It applies
// the same decoding rules the store uses, so ExportAll output parsed with
// ParseTable reproduces the stored sequence field for field.
func ParseTable(data []byte) ([]model.Rating, error) {
	return decodeRatings(data)
}

// decodeRatings parses the flat table encoding back into ratings,
// validating the header and the score column.
func decodeRatings(data []byte) ([]model.Rating, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = len(csvHeader)

	rows, err := r.ReadAll()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to parse CSV table")
	}
	if len(rows) == 0 {
		return nil, goerr.New("CSV table has no header row")
	}
	for i, col := range csvHeader {
		if rows[0][i] != col {
			return nil, goerr.New("unexpected CSV header",
				goerr.V("expected", col),
				goerr.V("actual", rows[0][i]))
		}
	}

	records := make([]model.Rating, 0, len(rows)-1)
	for i, row := range rows[1:] {
		score, err := strconv.Atoi(row[3])
		if err != nil {
			return nil, goerr.Wrap(err, "invalid score column",
				goerr.V("row", i+1),
				goerr.V("value", row[3]))
		}
		if score != 0 && score != 1 {
			return nil, goerr.Wrap(model.ErrInvalidScore, "invalid score column",
				goerr.V("row", i+1),
				goerr.V("score", score))
		}
		records = append(records, model.Rating{
			Assessor: types.AssessorName(row[0]),
			Item:     types.ItemName(row[1]),
			Group:    types.GroupName(row[2]),
			Score:    score,
			Comment:  row[4],
		})
	}

	return records, nil
}
