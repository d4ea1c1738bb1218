package brief

import (
	"testing"
	"time"

	"macrobrief/internal/model"
	"macrobrief/pkg/llm"
	"macrobrief/pkg/news"

	"github.com/go-playground/assert/v2"
)

// fakeExtractor records calls and replays canned summaries per topic.
type fakeExtractor struct {
	summaries map[string]llm.Summary
	calls     []extractCall
}

type extractCall struct {
	topic    string
	evidence []llm.Evidence
}

func (f *fakeExtractor) Extract(topic string, evidence []llm.Evidence) llm.Summary {
	f.calls = append(f.calls, extractCall{topic: topic, evidence: evidence})
	if s, ok := f.summaries[topic]; ok {
		return s
	}
	return llm.InsufficientSummary()
}

func (f *fakeExtractor) ModelName() string { return "fake" }

func validSummary() llm.Summary {
	return llm.Summary{
		What:   "The Fed held rates at 5.25%",
		SoWhat: "Markets expect a cut next quarter",
		Who:    "Jerome Powell, FOMC",
		Watch:  "not stated",
	}
}

func TestComposeDeepSection(t *testing.T) {
	// Two recent articles with scores [9, 3] and valid extraction
	// produce one Deep section with both titles, best score first.
	ext := &fakeExtractor{summaries: map[string]llm.Summary{"Fed Rate": validSummary()}}
	c := newComposer(ext, true)

	b := Bundle("Fed Rate", news.TopicNews{
		Recent: []news.Article{
			{Title: "Fed cut odds rise", Score: 3},
			{Title: "Fed holds steady", Score: 9},
		},
	})
	c.compose(b)

	assert.Equal(t, 1, len(c.sections))
	assert.Equal(t, "Fed Rate", c.sections[0].Topic)
	assert.Equal(t, model.SectionDeep, c.sections[0].Kind)
	assert.Equal(t, []string{"Fed holds steady", "Fed cut odds rise"}, c.sections[0].Titles)
	assert.Equal(t, 0, len(c.appendix))
	assert.Equal(t, true, c.stats.ModelUsed)

	// both articles went to the extractor, best score first
	assert.Equal(t, 1, len(ext.calls))
	assert.Equal(t, 2, len(ext.calls[0].evidence))
	assert.Equal(t, "Fed holds steady", ext.calls[0].evidence[0].Title)
}

func TestComposeDeepTakesTopTwoOfMany(t *testing.T) {
	ext := &fakeExtractor{summaries: map[string]llm.Summary{"Inflation": validSummary()}}
	c := newComposer(ext, true)

	b := Bundle("Inflation", news.TopicNews{
		Recent: []news.Article{
			{Title: "third", Score: 2},
			{Title: "first", Score: 9},
			{Title: "second", Score: 7},
		},
	})
	c.compose(b)

	assert.Equal(t, []string{"first", "second"}, c.sections[0].Titles)
}

func TestComposeDeepFallsBackToAppendix(t *testing.T) {
	ext := &fakeExtractor{} // always returns the sentinel
	c := newComposer(ext, true)

	b := Bundle("Fed Rate", news.TopicNews{
		Recent: []news.Article{
			{Title: "a", URL: "https://x.test/a", Score: 9},
			{Title: "b", URL: "https://x.test/b", Score: 3},
		},
	})
	c.compose(b)

	assert.Equal(t, 0, len(c.sections))
	assert.Equal(t, 2, len(c.appendix))
	assert.Equal(t, "a", c.appendix[0].Title)
	assert.Equal(t, "b", c.appendix[1].Title)
	assert.Equal(t, "Fed Rate", c.appendix[0].Label)
	assert.Equal(t, false, c.stats.ModelUsed)
}

func TestComposeShortSection(t *testing.T) {
	ext := &fakeExtractor{summaries: map[string]llm.Summary{"Oil Prices": validSummary()}}
	c := newComposer(ext, true)

	b := Bundle("Oil Prices", news.TopicNews{
		Recent: []news.Article{{Title: "OPEC trims output", Score: 6}},
	})
	c.compose(b)

	assert.Equal(t, 1, len(c.sections))
	assert.Equal(t, model.SectionShort, c.sections[0].Kind)
	assert.Equal(t, []string{"OPEC trims output"}, c.sections[0].Titles)
	assert.Equal(t, 1, len(ext.calls[0].evidence))
}

func TestComposeShortFallsBackToAppendix(t *testing.T) {
	// One recent article and a sentinel extraction result: zero
	// sections, one appendix item with the article's title and url.
	ext := &fakeExtractor{}
	c := newComposer(ext, true)

	b := Bundle("Oil Prices", news.TopicNews{
		Recent: []news.Article{{Title: "OPEC trims output", URL: "https://x.test/opec", Score: 6}},
	})
	c.compose(b)

	assert.Equal(t, 0, len(c.sections))
	assert.Equal(t, 1, len(c.appendix))
	assert.Equal(t, "OPEC trims output", c.appendix[0].Title)
	assert.Equal(t, "https://x.test/opec", c.appendix[0].URL)
}

func TestComposeStaleFallback(t *testing.T) {
	// Zero recent, five stale, fallback enabled: exactly three
	// appendix items in source order and no extractor call.
	ext := &fakeExtractor{}
	c := newComposer(ext, true)

	b := Bundle("Rare Topic", news.TopicNews{
		Stale: []news.Article{
			{Title: "s1"}, {Title: "s2"}, {Title: "s3"}, {Title: "s4"}, {Title: "s5"},
		},
	})
	c.compose(b)

	assert.Equal(t, 0, len(c.sections))
	assert.Equal(t, 3, len(c.appendix))
	assert.Equal(t, "s1", c.appendix[0].Title)
	assert.Equal(t, "s2", c.appendix[1].Title)
	assert.Equal(t, "s3", c.appendix[2].Title)
	assert.Equal(t, 0, len(ext.calls))
}

func TestComposeStaleFallbackDisabled(t *testing.T) {
	ext := &fakeExtractor{}
	c := newComposer(ext, false)

	c.compose(Bundle("Rare Topic", news.TopicNews{
		Stale: []news.Article{{Title: "s1"}, {Title: "s2"}},
	}))

	assert.Equal(t, 0, len(c.sections))
	assert.Equal(t, 0, len(c.appendix))
}

func TestCollectOverflowCapsRecentAndStale(t *testing.T) {
	// Overflow topics contribute at most 2 recent + 2 stale links and never
	// reach the extractor, however many recent articles they have.
	ext := &fakeExtractor{summaries: map[string]llm.Summary{"Crowded": validSummary()}}
	c := newComposer(ext, true)

	b := Bundle("Crowded", news.TopicNews{
		Recent: []news.Article{
			{Title: "r1", Score: 9}, {Title: "r2", Score: 8},
			{Title: "r3", Score: 7}, {Title: "r4", Score: 6},
		},
		Stale: []news.Article{{Title: "s1"}, {Title: "s2"}, {Title: "s3"}},
	})
	c.collectOverflow(b)

	assert.Equal(t, 0, len(ext.calls))
	assert.Equal(t, 0, len(c.sections))
	assert.Equal(t, 4, len(c.appendix))
	assert.Equal(t, "r1", c.appendix[0].Title)
	assert.Equal(t, "r2", c.appendix[1].Title)
	assert.Equal(t, "s1", c.appendix[2].Title)
	assert.Equal(t, "s2", c.appendix[3].Title)
}

func TestCollectOverflowStaleFallbackDisabled(t *testing.T) {
	c := newComposer(&fakeExtractor{}, false)

	c.collectOverflow(Bundle("t", news.TopicNews{
		Recent: []news.Article{{Title: "r1", Score: 1}},
		Stale:  []news.Article{{Title: "s1"}},
	}))

	assert.Equal(t, 1, len(c.appendix))
	assert.Equal(t, "r1", c.appendix[0].Title)
}

func TestSectionEvidenceNeverInAppendix(t *testing.T) {
	ext := &fakeExtractor{summaries: map[string]llm.Summary{"Promoted": validSummary()}}
	c := newComposer(ext, true)

	c.compose(Bundle("Promoted", news.TopicNews{
		Recent: []news.Article{{Title: "p1", Score: 9}, {Title: "p2", Score: 5}},
	}))
	c.compose(Bundle("Demoted", news.TopicNews{
		Recent: []news.Article{{Title: "d1", Score: 4}, {Title: "d2", Score: 2}},
	}))

	inSections := map[string]bool{}
	for _, s := range c.sections {
		for _, title := range s.Titles {
			inSections[title] = true
		}
	}
	for _, item := range c.appendix {
		assert.Equal(t, false, inSections[item.Title])
	}
	assert.Equal(t, 2, len(c.appendix))
}

func TestDeriveDate(t *testing.T) {
	tests := []struct {
		name    string
		article news.Article
		want    string
	}{
		{
			name:    "published timestamp wins",
			article: news.Article{PublishedAt: time.Date(2026, 8, 25, 23, 30, 0, 0, time.UTC), URL: "https://x.test/2020/01/01/old"},
			want:    "2026-08-25",
		},
		{
			name:    "slash separated url date",
			article: news.Article{URL: "https://x.test/news/2026/08/24/fed-holds"},
			want:    "2026-08-24",
		},
		{
			name:    "dash separated url date",
			article: news.Article{URL: "https://x.test/2026-08-24/fed-holds"},
			want:    "2026-08-24",
		},
		{
			name:    "date segment at end of path",
			article: news.Article{URL: "https://x.test/archive/2026/08/24"},
			want:    "2026-08-24",
		},
		{
			name:    "no date anywhere",
			article: news.Article{URL: "https://x.test/fed-holds-rates"},
			want:    "",
		},
		{
			name:    "digits inside a slug do not match",
			article: news.Article{URL: "https://x.test/story-2026-08-24-fed"},
			want:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveDate(tt.article))
		})
	}
}
