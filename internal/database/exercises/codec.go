package exercises

import (
	"encoding/json"
	"fmt"

	"github.com/kelimeci/kelimeci/internal/entities"
)

// detailFormatVersion is the current on-disk format of serialized question
// records. Bump it when the record shape changes and add a decode branch;
// the SQL schema is unaffected by record-shape drift.
const detailFormatVersion = 1

// detailEnvelope is the stored form of a detail blob.
type detailEnvelope struct {
	Version   int                       `json:"version"`
	Questions []entities.QuestionRecord `json:"questions"`
}

// encodeDetails serializes an ordered question-record sequence into the
// versioned text blob stored against an exercise row.
func encodeDetails(records []entities.QuestionRecord) (string, error) {
	data, err := json.Marshal(detailEnvelope{
		Version:   detailFormatVersion,
		Questions: records,
	})
	if err != nil {
		return "", fmt.Errorf("encode exercise details: %w", err)
	}
	return string(data), nil
}

// decodeDetails reads a detail blob back into question records. Blobs
// written before the envelope was introduced are a bare JSON array and are
// decoded as version 1.
func decodeDetails(blob string) ([]entities.QuestionRecord, error) {
	if blob == "" {
		return []entities.QuestionRecord{}, nil
	}

	var envelope detailEnvelope
	if err := json.Unmarshal([]byte(blob), &envelope); err == nil && envelope.Version > 0 {
		if envelope.Version > detailFormatVersion {
			return nil, fmt.Errorf("decode exercise details: unsupported format version %d", envelope.Version)
		}
		return envelope.Questions, nil
	}

	var legacy []entities.QuestionRecord
	if err := json.Unmarshal([]byte(blob), &legacy); err != nil {
		return nil, fmt.Errorf("decode exercise details: %w", err)
	}
	return legacy, nil
}
