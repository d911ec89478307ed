package pagination

import "strings"

// Page is a contiguous run of paragraphs shown together in one reading view.
type Page struct {
	Number     int      `json:"number"` // 1-based
	Start      int      `json:"start"`  // index of the first paragraph
	End        int      `json:"end"`    // index after the last paragraph
	Paragraphs []string `json:"paragraphs"`
	CharCount  int      `json:"char_count"`
}

// Paginate partitions paragraphs into pages according to the policy.
// The result always holds at least one page; an empty document yields a
// single page without paragraphs.
func Paginate(paragraphs []string, policy Policy) []Page {
	policy = policy.Normalize()

	var pages []Page
	if policy.Mode == ModeFixed {
		pages = paginateFixed(paragraphs, policy.PageSize)
	} else {
		pages = paginateSmart(paragraphs, policy)
	}

	if len(pages) == 0 {
		return []Page{{Number: 1, Paragraphs: []string{}}}
	}
	return pages
}

func paginateFixed(paragraphs []string, pageSize int) []Page {
	// start+pageSize must not overflow for huge page sizes
	pageSize = min(pageSize, max(len(paragraphs), 1))
	pages := make([]Page, 0, len(paragraphs)/pageSize+1)
	for start := 0; start < len(paragraphs); start += pageSize {
		end := min(start+pageSize, len(paragraphs))
		pages = append(pages, newPage(len(pages)+1, start, end, paragraphs[start:end]))
	}
	return pages
}

// paginateSmart greedily fills pages towards TargetChars. Before a paragraph
// is added the open page is closed when, in order of precedence:
//
//	a. it already holds MaxParagraphs paragraphs
//	b. the paragraph would push it past MaxChars and it holds MinParagraphs
//	c. it holds MinParagraphs and has reached TargetChars
//
// Paragraphs that are blank after trimming are skipped, so Start/End still
// cover them and the pages keep partitioning the input.
func paginateSmart(paragraphs []string, policy Policy) []Page {
	var (
		pages   []Page
		current []string
		chars   int
		start   int
	)

	closePage := func(end int) {
		if len(current) == 0 {
			return
		}
		pages = append(pages, Page{
			Number:     len(pages) + 1,
			Start:      start,
			End:        end,
			Paragraphs: current,
			CharCount:  chars,
		})
		current, chars, start = nil, 0, end
	}

	for i, raw := range paragraphs {
		p := strings.TrimSpace(raw)
		if p == "" {
			continue
		}
		length := CharCount(p)

		switch n := len(current); {
		case n >= policy.MaxParagraphs:
			closePage(i)
		case chars+length > policy.MaxChars && n >= policy.MinParagraphs:
			closePage(i)
		case n >= policy.MinParagraphs && chars >= policy.TargetChars:
			closePage(i)
		}

		current = append(current, p)
		chars += length
	}
	closePage(len(paragraphs))

	return pages
}

func newPage(number, start, end int, paragraphs []string) Page {
	chars := 0
	for _, p := range paragraphs {
		chars += CharCount(p)
	}
	return Page{
		Number:     number,
		Start:      start,
		End:        end,
		Paragraphs: paragraphs,
		CharCount:  chars,
	}
}
