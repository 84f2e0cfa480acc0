package record

import (
	"github.com/0Anshu1/collabup-be/internal/db"
	domrec "github.com/0Anshu1/collabup-be/internal/domain/record"
)

func toRecord(d db.Document) domrec.Record {
	return domrec.New(d.ID, d.Fields)
}

// toDocument drops a stored "id" attribute: the document key carries it.
func toDocument(r domrec.Record) db.Document {
	fields := make(map[string]any, len(r.Fields()))
	for k, v := range r.Fields() {
		if k == "id" {
			continue
		}
		fields[k] = v
	}
	return db.Document{ID: r.ID(), Fields: fields}
}
