package db

import "errors"

// Sentinel errors for store operations.
var (
	ErrIndexNotFound     = errors.New("db: index not found")
	ErrIndexExists       = errors.New("db: index already exists")
	ErrInvalidCollection = errors.New("db: invalid collection name")
	ErrMissingID         = errors.New("db: document id is required")
)

// Op constants name the backend operation for error context.
const (
	OpPing        = "PING"
	OpCreateIndex = "FT.CREATE"
	OpIndexInfo   = "FT.INFO"
	OpSearch      = "FT.SEARCH"
	OpJSONSet     = "JSON.SET"
	OpJSONGet     = "JSON.GET"
	OpScan        = "SCAN"
	OpDecode      = "DECODE"
	OpEncode      = "ENCODE"
	OpIterate     = "ITERATE"
	OpUpsert      = "UPSERT"
	OpSelect      = "SELECT"
	OpMigrate     = "MIGRATE"
)

// Error wraps an underlying error with the operation name for diagnostics.
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string { return e.Op + ": " + e.Err.Error() }
func (e *Error) Unwrap() error { return e.Err }

// ValidateDocument checks the collection name and document ID before a write.
func ValidateDocument(collection string, doc Document) error {
	if !IsValidIdentifier(collection) {
		return ErrInvalidCollection
	}
	if doc.ID == "" {
		return ErrMissingID
	}
	return nil
}
