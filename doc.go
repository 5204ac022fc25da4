// Package memoir builds the printable companion material for the REWIRED
// recovery course: fill-in workbooks, worksheets, and styled guides.
//
// # Direct Layout
//
// A Document is an ordered list of blocks (title, section heading, body text,
// prompt, writing space, bullet, table, page break). Render lays each block
// out on a Canvas that flows text top to bottom and breaks pages
// automatically:
//
//	doc, err := memoir.ParseDocument(data)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	pages, err := memoir.RenderFile(doc, "out/Day_1_RECOGNIZE_Workbook.pdf")
//
// Every page receives the document header and a "Page N" footer. Tables take
// caller-supplied column widths and are rejected when they do not fit the
// printable width.
//
// # Template Flow
//
// For styled guides, a TemplateBuilder fills an HTML template with a title,
// a subtitle and a raw content fragment, then prints it through headless
// Chrome:
//
//	b, err := memoir.NewTemplateBuilder(
//	    memoir.WithTemplateFile("rewired-template.html"),
//	    memoir.WithRenderer(memoir.NewRodRenderer(30*time.Second)),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer b.Close()
//
//	err = b.Generate(ctx, "REWIRED Relief Toolkit", "Crisis-Focused Guide", fragment, "relief.pdf")
//
// The title and subtitle are escaped, the content fragment is inserted
// verbatim. Two renderers are available: go-rod (default) and chromedp.
package memoir
