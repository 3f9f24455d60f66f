package stories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

/*
TestParse_FrontMatter: a well-formed front-matter block populates the
metadata and strips the block from the body.
*/
func TestParse_FrontMatter(t *testing.T) {
	raw := "---\n" +
		"title: The Old Pier\n" +
		"author: J. Calloway\n" +
		"date: 2024-03-01\n" +
		"tags:\n" +
		"  - maritime\n" +
		"  - industry\n" +
		"---\n" +
		"\n# The Old Pier\n\nIt creaked for a century.\n"

	story := Parse(raw)

	assert.Equal(t, "The Old Pier", story.Metadata.Title)
	assert.Equal(t, "J. Calloway", story.Metadata.Author)
	assert.Equal(t, "2024-03-01", story.Metadata.Date)
	assert.Equal(t, []string{"maritime", "industry"}, story.Metadata.Tags)
	assert.Equal(t, "\n# The Old Pier\n\nIt creaked for a century.\n", story.Body)
}

/*
TestParse_NoFrontMatter: without a leading delimiter the whole input is
the body, untouched.
*/
func TestParse_NoFrontMatter(t *testing.T) {
	raw := "# Just Markdown\n\n---\n\nA thematic break, not front matter.\n"

	story := Parse(raw)

	assert.Equal(t, raw, story.Body)
	assert.Empty(t, story.Metadata.Title)
	assert.Empty(t, story.Metadata.Tags)
}

func TestParse_UnterminatedBlock(t *testing.T) {
	raw := "---\ntitle: Lost\nno closing delimiter here\n"

	story := Parse(raw)

	assert.Equal(t, raw, story.Body)
	assert.Empty(t, story.Metadata.Title)
}

func TestParse_MalformedYAML(t *testing.T) {
	raw := "---\ntitle: [unclosed\n---\nbody text\n"

	story := Parse(raw)

	assert.Equal(t, raw, story.Body)
	assert.Empty(t, story.Metadata.Title)
}

func TestParse_WindowsLineEndings(t *testing.T) {
	raw := "---\r\ntitle: Crossing\r\n---\r\nbody\r\n"

	story := Parse(raw)

	require.Equal(t, "Crossing", story.Metadata.Title)
	assert.Contains(t, story.Body, "body")
}
