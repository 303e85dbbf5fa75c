package mirage

import (
	"fmt"
	"html/template"
	"strings"
	"sync"

	"github.com/alnah/go-mirage/internal/assets"
)

// defaultLang is used when Document.Lang is empty.
const defaultLang = "en"

// Document describes a standalone HTML5 page built around converted fragments.
type Document struct {
	Title     string   // <title> text, escaped
	Lang      string   // <html lang>, defaults to "en"
	Generator string   // optional <meta name="generator"> content
	CSS       string   // optional stylesheet inlined in <head>
	Body      []string // fragments from Convert, inserted verbatim
}

// documentData is the value handed to the page template.
type documentData struct {
	Title     string
	Lang      string
	Generator string
	CSS       template.CSS
	Body      template.HTML
}

var loadDocumentTemplate = sync.OnceValues(func() (*template.Template, error) {
	src, err := assets.LoadTemplate(assets.DocumentTemplate)
	if err != nil {
		return nil, err
	}
	return template.New(assets.DocumentTemplate).Parse(src)
})

// RenderDocument wraps doc.Body in the embedded page template.
func RenderDocument(doc Document) (string, error) {
	tmpl, err := loadDocumentTemplate()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDocumentRender, err)
	}

	lang := doc.Lang
	if lang == "" {
		lang = defaultLang
	}

	data := documentData{
		Title:     doc.Title,
		Lang:      lang,
		Generator: doc.Generator,
		CSS:       template.CSS(doc.CSS),                     // #nosec G203 -- stylesheet comes from embedded assets
		Body:      template.HTML(strings.Join(doc.Body, "")), // #nosec G203 -- fragments are the converter output
	}

	var buf strings.Builder
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("%w: %v", ErrDocumentRender, err)
	}
	return buf.String(), nil
}

// FirstHeading returns the text of the first heading line, or "" if there is none.
func FirstHeading(lines []string) string {
	for _, line := range lines {
		if isHeading(line) {
			return strings.TrimSpace(headingText(line))
		}
	}
	return ""
}
