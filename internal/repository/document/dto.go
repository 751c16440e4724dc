package document

import (
	"encoding/binary"
	"math"
	"time"

	"github.com/kailas-cloud/vecsense/internal/domain"
	domdoc "github.com/kailas-cloud/vecsense/internal/domain/document"
)

const (
	fieldID        = "__id"
	fieldTitle     = "__title"
	fieldContent   = "__content"
	fieldModel     = "__model"
	fieldVector    = "__vector"
	fieldCreatedAt = "__created_at"
)

// buildHashFields converts a domain Document into a flat map[string]string for HSET.
func buildHashFields(doc *domdoc.Document) map[string]string {
	emb := doc.Embedding()
	return map[string]string{
		fieldID:        doc.ID(),
		fieldTitle:     doc.Title(),
		fieldContent:   doc.Content(),
		fieldModel:     string(emb.Model),
		fieldVector:    vectorToBytes(emb.Vector),
		fieldCreatedAt: doc.CreatedAt().Format(time.RFC3339Nano),
	}
}

// parseHashFields converts a flat hash map back into a domain Document.
// A missing or malformed timestamp hydrates as the zero time.
func parseHashFields(m map[string]string) domdoc.Document {
	createdAt, _ := time.Parse(time.RFC3339Nano, m[fieldCreatedAt])
	emb := domain.Embedding{
		Vector: bytesToVector(m[fieldVector]),
		Model:  domain.EmbeddingModel(m[fieldModel]),
	}
	return domdoc.Reconstruct(m[fieldID], m[fieldTitle], m[fieldContent], emb, createdAt)
}

// vectorToBytes serializes []float64 to a binary string (8 bytes per float, little-endian).
func vectorToBytes(v []float64) string {
	buf := make([]byte, len(v)*8)
	for i, f := range v {
		binary.LittleEndian.PutUint64(buf[i*8:], math.Float64bits(f))
	}
	return string(buf)
}

// bytesToVector deserializes a binary string back to []float64.
func bytesToVector(s string) []float64 {
	b := []byte(s)
	if len(b) == 0 || len(b)%8 != 0 {
		return nil
	}
	v := make([]float64, len(b)/8)
	for i := range v {
		v[i] = math.Float64frombits(binary.LittleEndian.Uint64(b[i*8:]))
	}
	return v
}
