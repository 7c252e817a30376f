package services

import "strconv"

const QuestionsPerPage = 10

// ParsePage reads a 1-based page number; anything unusable means page 1.
func ParsePage(raw string) int {
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// Paginate returns the page-th window of QuestionsPerPage items. Pages past
// the end yield an empty slice.
func Paginate[T any](items []T, page int) []T {
	if page < 1 {
		page = 1
	}
	if page-1 > len(items)/QuestionsPerPage {
		return []T{}
	}
	start := (page - 1) * QuestionsPerPage
	if start >= len(items) {
		return []T{}
	}
	end := min(start+QuestionsPerPage, len(items))
	return items[start:end]
}
