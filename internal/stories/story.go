package stories

// Metadata is the structured front-matter of a narrative document. Every
// field is optional; authors write what they know.
type Metadata struct {
	Title  string   `yaml:"title" json:"title,omitempty"`
	Author string   `yaml:"author" json:"author,omitempty"`
	Date   string   `yaml:"date" json:"date,omitempty"`
	Tags   []string `yaml:"tags" json:"tags,omitempty"`
}

// Story is a parsed narrative document: front-matter metadata plus the
// markdown body.
type Story struct {
	Metadata Metadata `json:"metadata"`
	Body     string   `json:"body"`
}
