package mirage

import "errors"

// Sentinel errors for library operations.
// Conversion itself never fails; these cover option parsing and document rendering.
var (
	ErrInvalidParagraphMode = errors.New("invalid paragraph mode")
	ErrDocumentRender       = errors.New("document rendering failed")
)
