// Package importers loads plain-text articles and books into the library.
//
// # Flow
//
//	file bytes → DecodeText → CleanContent → metadata detection → ArticleStore
//
// DecodeText accepts UTF-8 (with or without BOM), UTF-16 with a BOM and the
// GBK/GB18030 encodings common for Chinese learning material. Metadata the
// caller does not supply is detected from the text:
//
//   - title: a short first line that does not end with a period, otherwise
//     the file name with underscores and dashes turned into spaces
//   - category: the first keyword group found in the text
//   - difficulty: average length of latin words
//
// Books can be split into chapters (SplitChapters); each chapter is stored
// as its own article titled "<book> - <chapter heading>".
//
// # Example Usage
//
//	importer := importers.NewArticleImporter(repo)
//	importer.ImportFile("story.txt", importers.Options{})
//	importer.ImportDirectory("./articles", "*.txt", importers.Options{Overwrite: true})
//	fmt.Println(importer.Result())
package importers
