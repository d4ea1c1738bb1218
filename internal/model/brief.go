package model

import (
	"macrobrief/pkg/llm"
	"macrobrief/pkg/news"
)

const (
	SectionDeep  = "Deep"
	SectionShort = "Short"
)

// TopicBundle is one topic's ranked material for a single run. Recent is
// sorted descending by score; TopicScore is the best recent score, or 0 when
// no recent article exists. Bundles are never mutated after creation.
type TopicBundle struct {
	Topic      string
	Recent     []news.Article
	Stale      []news.Article
	TopicScore float64
}

// Section is a narrative block backed by one (Short) or two (Deep) grounded
// evidence articles.
type Section struct {
	Topic   string
	Kind    string
	Titles  []string
	Summary llm.Summary
}

// AppendixItem is a link-only entry for an article that did not make it into
// a narrative section.
type AppendixItem struct {
	Title string
	URL   string
	Date  string
	Label string
}

type Stats struct {
	TopicsProcessed int
	RecentUsed      int
	StaleUsed       int
	ModelUsed       bool
}

type Result struct {
	Sections []Section
	Appendix []AppendixItem
	Stats    Stats
}

// Brief is a rendered report on disk, addressed by its UTC date.
type Brief struct {
	Date    string
	Content string
}

type BriefInfo struct {
	Date string
	Size int64
}
