// Package slugs turns blog post titles into the URL slugs used by the
// Guildmaster blog platform.
package slugs

import "strings"

// DefaultDropChars are removed from a title before it is slugged.
const DefaultDropChars = ":,?!."

// SlugGenerator is the main struct for configuring and generating slugs.
type SlugGenerator struct {
	delimiter  string
	lowercase  bool
	dropChars  string
	separators string
	prefix     string
	suffix     string
}

// New creates a new SlugGenerator with the platform's default rules:
// drop ":,?!.", turn spaces and apostrophes into dashes, lowercase.
func New() *SlugGenerator {
	return &SlugGenerator{
		delimiter:  "-",
		lowercase:  true,
		dropChars:  DefaultDropChars,
		separators: " '",
	}
}

// Delimiter sets the string that replaces each separator character.
func (sg *SlugGenerator) Delimiter(delimiter string) *SlugGenerator {
	sg.delimiter = delimiter
	return sg
}

// Lowercase sets whether the slug should be converted to lowercase.
func (sg *SlugGenerator) Lowercase(lowercase bool) *SlugGenerator {
	sg.lowercase = lowercase
	return sg
}

// DropChars replaces the set of characters removed from the input.
func (sg *SlugGenerator) DropChars(chars string) *SlugGenerator {
	sg.dropChars = chars
	return sg
}

// Separators replaces the set of characters turned into the delimiter.
func (sg *SlugGenerator) Separators(chars string) *SlugGenerator {
	sg.separators = chars
	return sg
}

// WithPrefix adds a prefix to the generated slug.
func (sg *SlugGenerator) WithPrefix(prefix string) *SlugGenerator {
	sg.prefix = prefix
	return sg
}

// WithSuffix adds a suffix to the generated slug.
func (sg *SlugGenerator) WithSuffix(suffix string) *SlugGenerator {
	sg.suffix = suffix
	return sg
}

// Generate creates a slug from the given text based on the configured options.
//
// Every separator is replaced on its own, so repeated spaces yield repeated
// delimiters. Non-ASCII letters are kept and only their case changes.
func (sg *SlugGenerator) Generate(text string) string {
	result := DropChars(text, sg.dropChars)

	if sg.separators != "" {
		var b strings.Builder
		b.Grow(len(result))
		for _, r := range result {
			if strings.ContainsRune(sg.separators, r) {
				b.WriteString(sg.delimiter)
				continue
			}
			b.WriteRune(r)
		}
		result = b.String()
	}

	if sg.lowercase {
		result = strings.ToLower(result)
	}

	// Apply prefix and suffix
	if sg.prefix != "" {
		result = sg.prefix + sg.delimiter + result
	}
	if sg.suffix != "" {
		result = result + sg.delimiter + sg.suffix
	}

	return result
}

// DropChars returns s with every occurrence of each character in chars removed.
// The remaining characters keep their order.
func DropChars(s, chars string) string {
	if s == "" || chars == "" {
		return s
	}
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(chars, r) {
			return -1
		}
		return r
	}, s)
}

var defaultGenerator = New()

// Slugify converts a title using the default rules.
//
//	Slugify("Here's Guildmaster's Job") == "here-s-guildmaster-s-job"
func Slugify(title string) string {
	return defaultGenerator.Generate(title)
}
