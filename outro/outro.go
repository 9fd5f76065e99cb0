// Package outro generates the closing markdown block appended to every
// Guildmaster blog post: share links for the post plus the standard
// follow/subscribe links.
package outro

import (
	"fmt"

	"github.com/presbrey/outro/links"
	"github.com/presbrey/outro/slugs"
)

// Fixed follow links, emitted verbatim.
const (
	TwitterLink  = "https://twitter.com/GuildmasterC"
	PodcastLink  = "https://www.youtube.com/results?search_query=guildmaster+consulting"
	LinkedInLink = "https://www.linkedin.com/company/guildmaster-consulting"
)

// Blog and share endpoints.
const (
	Scheme         = "https"
	BlogHost       = "www.guildmasterconsulting.com"
	BlogPathPrefix = "/post/"
	RedditHost     = "www.reddit.com"
	RedditPath     = "/submit"
	HackerNewsHost = "news.ycombinator.com"
	HackerNewsPath = "/submitlink"
)

const markdownTemplate = `**We're on a mission to make jobs suck less, one software management tip at a time. We need your help!**

- [Share to Reddit](%s)
- [Share to Hacker News](%s)

Do you want to stay up to date on the latest management tips to help your team stay productive?

Click "Subscribe to the Soapbox" below for more!

- [Follow us on Twitter](%s)
- [Subscribe to our Podcast](%s)
- [Follow us on LinkedIn](%s)`

// Result holds every value derived from a title.
type Result struct {
	Title         string `json:"title"`
	Slug          string `json:"slug"`
	PostURL       string `json:"post_url"`
	RedditURL     string `json:"reddit_url"`
	HackerNewsURL string `json:"hacker_news_url"`
	Markdown      string `json:"markdown"`
}

// PostURL returns the blog URL of the post with the given title.
// An empty title yields the bare /post/ URL.
func PostURL(title string) string {
	return links.Build(Scheme, BlogHost, BlogPathPrefix+slugs.Slugify(title))
}

// RedditURL returns a link that submits postURL to reddit under title.
func RedditURL(title, postURL string) string {
	return links.Build(Scheme, RedditHost, RedditPath,
		links.Pair{Key: "url", Value: postURL},
		links.Pair{Key: "title", Value: title},
	)
}

// HackerNewsURL returns a link that submits postURL to Hacker News under title.
func HackerNewsURL(title, postURL string) string {
	return links.Build(Scheme, HackerNewsHost, HackerNewsPath,
		links.Pair{Key: "u", Value: postURL},
		links.Pair{Key: "t", Value: title},
	)
}

// Build derives the slug, post URL, share URLs and markdown for title.
func Build(title string) Result {
	slug := slugs.Slugify(title)
	post := links.Build(Scheme, BlogHost, BlogPathPrefix+slug)
	reddit := RedditURL(title, post)
	hn := HackerNewsURL(title, post)

	return Result{
		Title:         title,
		Slug:          slug,
		PostURL:       post,
		RedditURL:     reddit,
		HackerNewsURL: hn,
		Markdown:      render(reddit, hn),
	}
}

// Generate returns the outro markdown for title. The text has no trailing
// newline.
func Generate(title string) string {
	return Build(title).Markdown
}

func render(reddit, hn string) string {
	return fmt.Sprintf(markdownTemplate, reddit, hn, TwitterLink, PodcastLink, LinkedInLink)
}
