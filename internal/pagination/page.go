package pagination

// PageInfo describes the layout of the returned page.
type PageInfo struct {
	ParagraphCount int  `json:"paragraph_count"`
	CharCount      int  `json:"char_count"`
	PaginationMode Mode `json:"pagination_mode"`
}

// PageResult is the response to a single page request.
type PageResult struct {
	CurrentPage     int      `json:"current_page"`
	TotalPages      int      `json:"total_pages"`
	TotalParagraphs int      `json:"total_paragraphs"`
	Paragraphs      []string `json:"paragraphs"`
	HasNext         bool     `json:"has_next"`
	HasPrevious     bool     `json:"has_previous"`
	PageInfo        PageInfo `json:"page_info"`
}

// ClampPage moves a requested page number into [1, total]. A total below 1 is
// treated as a single page.
func ClampPage(number, total int) int {
	if total < 1 {
		total = 1
	}
	if number < 1 {
		return 1
	}
	if number > total {
		return total
	}
	return number
}

// GetPage paginates the paragraphs and returns the requested page. Out of
// range page numbers are clamped instead of rejected.
func GetPage(paragraphs []string, policy Policy, number int) PageResult {
	return ResultFromPages(Paginate(paragraphs, policy), len(paragraphs), policy, number)
}

// ResultFromPages builds a PageResult from pages that were already computed,
// e.g. taken from a Cache. The returned paragraph slice is a copy.
func ResultFromPages(pages []Page, totalParagraphs int, policy Policy, number int) PageResult {
	if len(pages) == 0 {
		pages = []Page{{Number: 1, Paragraphs: []string{}}}
	}
	current := ClampPage(number, len(pages))
	page := pages[current-1]

	content := make([]string, len(page.Paragraphs))
	copy(content, page.Paragraphs)

	return PageResult{
		CurrentPage:     current,
		TotalPages:      len(pages),
		TotalParagraphs: totalParagraphs,
		Paragraphs:      content,
		HasNext:         current < len(pages),
		HasPrevious:     current > 1,
		PageInfo: PageInfo{
			ParagraphCount: len(content),
			CharCount:      page.CharCount,
			PaginationMode: policy.Normalize().Mode,
		},
	}
}
