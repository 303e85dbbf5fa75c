package assets

// DocumentTemplate is the name of the standalone page template.
const DocumentTemplate = "document"

// DefaultStyle is the style inlined into standalone documents unless configured otherwise.
const DefaultStyle = "plain"

var defaultLoader = NewEmbeddedLoader()

// LoadStyle loads an embedded CSS style by name.
func LoadStyle(name string) (string, error) {
	return defaultLoader.LoadStyle(name)
}

// LoadTemplate loads an embedded HTML template by name.
func LoadTemplate(name string) (string, error) {
	return defaultLoader.LoadTemplate(name)
}

// StyleNames lists the embedded style names.
func StyleNames() []string {
	return defaultLoader.StyleNames()
}
