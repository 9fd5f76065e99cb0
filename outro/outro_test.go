package outro

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	confluenceTitle = "Organizing Confluence Pages: How to Conquer Your Mess With Tags"
	confluencePost  = "https://www.guildmasterconsulting.com/post/organizing-confluence-pages-how-to-conquer-your-mess-with-tags"
	confluenceRed   = "https://www.reddit.com/submit?url=https%3A%2F%2Fwww.guildmasterconsulting.com%2Fpost%2Forganizing-confluence-pages-how-to-conquer-your-mess-with-tags&title=Organizing%20Confluence%20Pages%3A%20How%20to%20Conquer%20Your%20Mess%20With%20Tags"
	confluenceHN    = "https://news.ycombinator.com/submitlink?u=https%3A%2F%2Fwww.guildmasterconsulting.com%2Fpost%2Forganizing-confluence-pages-how-to-conquer-your-mess-with-tags&t=Organizing%20Confluence%20Pages%3A%20How%20to%20Conquer%20Your%20Mess%20With%20Tags"

	jobTitle = "How to Win Productivity Quickly at Work: Here's Guildmaster's Engineering Manager Job Description"
	jobPost  = "https://www.guildmasterconsulting.com/post/how-to-win-productivity-quickly-at-work-here-s-guildmaster-s-engineering-manager-job-description"
)

const confluenceOutro = `**We're on a mission to make jobs suck less, one software management tip at a time. We need your help!**

- [Share to Reddit](https://www.reddit.com/submit?url=https%3A%2F%2Fwww.guildmasterconsulting.com%2Fpost%2Forganizing-confluence-pages-how-to-conquer-your-mess-with-tags&title=Organizing%20Confluence%20Pages%3A%20How%20to%20Conquer%20Your%20Mess%20With%20Tags)
- [Share to Hacker News](https://news.ycombinator.com/submitlink?u=https%3A%2F%2Fwww.guildmasterconsulting.com%2Fpost%2Forganizing-confluence-pages-how-to-conquer-your-mess-with-tags&t=Organizing%20Confluence%20Pages%3A%20How%20to%20Conquer%20Your%20Mess%20With%20Tags)

Do you want to stay up to date on the latest management tips to help your team stay productive?

Click "Subscribe to the Soapbox" below for more!

- [Follow us on Twitter](https://twitter.com/GuildmasterC)
- [Subscribe to our Podcast](https://www.youtube.com/results?search_query=guildmaster+consulting)
- [Follow us on LinkedIn](https://www.linkedin.com/company/guildmaster-consulting)`

const jobOutro = `**We're on a mission to make jobs suck less, one software management tip at a time. We need your help!**

- [Share to Reddit](https://www.reddit.com/submit?url=https%3A%2F%2Fwww.guildmasterconsulting.com%2Fpost%2Fhow-to-win-productivity-quickly-at-work-here-s-guildmaster-s-engineering-manager-job-description&title=How%20to%20Win%20Productivity%20Quickly%20at%20Work%3A%20Here%27s%20Guildmaster%27s%20Engineering%20Manager%20Job%20Description)
- [Share to Hacker News](https://news.ycombinator.com/submitlink?u=https%3A%2F%2Fwww.guildmasterconsulting.com%2Fpost%2Fhow-to-win-productivity-quickly-at-work-here-s-guildmaster-s-engineering-manager-job-description&t=How%20to%20Win%20Productivity%20Quickly%20at%20Work%3A%20Here%27s%20Guildmaster%27s%20Engineering%20Manager%20Job%20Description)

Do you want to stay up to date on the latest management tips to help your team stay productive?

Click "Subscribe to the Soapbox" below for more!

- [Follow us on Twitter](https://twitter.com/GuildmasterC)
- [Subscribe to our Podcast](https://www.youtube.com/results?search_query=guildmaster+consulting)
- [Follow us on LinkedIn](https://www.linkedin.com/company/guildmaster-consulting)`

func TestPostURL(t *testing.T) {
	assert.Equal(t, confluencePost, PostURL(confluenceTitle))
	assert.Equal(t, jobPost, PostURL(jobTitle))
	assert.Equal(t, "https://www.guildmasterconsulting.com/post/", PostURL(""))
}

func TestRedditURL(t *testing.T) {
	assert.Equal(t, confluenceRed, RedditURL(confluenceTitle, PostURL(confluenceTitle)))
}

func TestHackerNewsURL(t *testing.T) {
	assert.Equal(t, confluenceHN, HackerNewsURL(confluenceTitle, PostURL(confluenceTitle)))
}

func TestGenerate(t *testing.T) {
	assert.Equal(t, confluenceOutro, Generate(confluenceTitle))
}

func TestGenerate_Apostrophes(t *testing.T) {
	assert.Equal(t, jobOutro, Generate(jobTitle))
}

func TestGenerate_Deterministic(t *testing.T) {
	assert.Equal(t, Generate(jobTitle), Generate(jobTitle))
}

func TestGenerate_NoTrailingNewline(t *testing.T) {
	out := Generate(confluenceTitle)
	assert.False(t, strings.HasSuffix(out, "\n"))
	assert.True(t, strings.HasSuffix(out, "(https://www.linkedin.com/company/guildmaster-consulting)"))
}

func TestBuild(t *testing.T) {
	res := Build(confluenceTitle)
	assert.Equal(t, confluenceTitle, res.Title)
	assert.Equal(t, "organizing-confluence-pages-how-to-conquer-your-mess-with-tags", res.Slug)
	assert.Equal(t, confluencePost, res.PostURL)
	assert.Equal(t, confluenceRed, res.RedditURL)
	assert.Equal(t, confluenceHN, res.HackerNewsURL)
	assert.Equal(t, confluenceOutro, res.Markdown)
}

func TestBuild_Empty(t *testing.T) {
	res := Build("")
	assert.Equal(t, "", res.Slug)
	assert.Equal(t, "https://www.guildmasterconsulting.com/post/", res.PostURL)
	assert.Contains(t, res.Markdown, "[Share to Reddit](https://www.reddit.com/submit?url=https%3A%2F%2Fwww.guildmasterconsulting.com%2Fpost%2F&title=)")
}

func TestShareLinksRoundTrip(t *testing.T) {
	titles := []string{
		confluenceTitle,
		jobTitle,
		"Ümlauts & Ampersands + Plus Signs = 100% Fun?",
		"Two  Spaces",
	}

	for _, title := range titles {
		t.Run(title, func(t *testing.T) {
			res := Build(title)

			reddit, err := url.Parse(res.RedditURL)
			require.NoError(t, err)
			rq, err := url.ParseQuery(reddit.RawQuery)
			require.NoError(t, err)
			assert.Equal(t, res.PostURL, rq.Get("url"))
			assert.Equal(t, title, rq.Get("title"))

			hn, err := url.Parse(res.HackerNewsURL)
			require.NoError(t, err)
			hq, err := url.ParseQuery(hn.RawQuery)
			require.NoError(t, err)
			assert.Equal(t, res.PostURL, hq.Get("u"))
			assert.Equal(t, title, hq.Get("t"))
		})
	}
}
