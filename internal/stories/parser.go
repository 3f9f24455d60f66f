package stories

import (
	"strings"

	"gopkg.in/yaml.v3"
)

const frontMatterDelimiter = "---"

// Parse splits a narrative document into front-matter metadata and markdown
// body.
//
// The front-matter block is optional: when the document does not open with
// a --- delimiter line, or the block is unterminated, or the YAML inside
// does not decode, the whole input becomes the body and the metadata stays
// empty. Narrative content is author-supplied prose; a formatting mistake
// must degrade to "no metadata", never to an error.
func Parse(raw string) Story {
	lines := strings.Split(raw, "\n")
	if len(lines) == 0 || strings.TrimRight(lines[0], "\r") != frontMatterDelimiter {
		return Story{Body: raw}
	}

	closing := -1
	for i := 1; i < len(lines); i++ {
		if strings.TrimRight(lines[i], "\r") == frontMatterDelimiter {
			closing = i
			break
		}
	}
	if closing == -1 {
		return Story{Body: raw}
	}

	var metadata Metadata
	block := strings.Join(lines[1:closing], "\n")
	if err := yaml.Unmarshal([]byte(block), &metadata); err != nil {
		return Story{Body: raw}
	}

	return Story{
		Metadata: metadata,
		Body:     strings.Join(lines[closing+1:], "\n"),
	}
}
