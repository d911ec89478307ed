// Package pagination splits reading content into display-ready pages.
//
// # Pipeline
//
// Raw article text flows one way through the package:
//
//	raw text ──Extract──▶ paragraphs ──Paginate──▶ pages ──GetPage──▶ PageResult
//
// Extract splits text on blank lines and trims every paragraph. Paginate groups
// consecutive paragraphs into pages using a Policy, either a fixed number of
// paragraphs per page or a character budget ("smart" mode). GetPage resolves a
// single page number, clamping it into range, and adds navigation flags.
//
// # Guarantees
//
// All functions are pure and total. Pages always partition the paragraph
// sequence with no gaps, overlaps or reordering, and an empty document always
// produces exactly one empty page. Degenerate policy values are normalised
// instead of rejected, so pagination terminates for any input.
//
// # Usage
//
//	doc, changed := pagination.Document{RawText: article.Content}.Resolve()
//	if changed {
//		// persist doc.Paragraphs alongside the raw text
//	}
//	result := pagination.GetPage(doc.Paragraphs, pagination.DefaultPolicy, 2)
package pagination
