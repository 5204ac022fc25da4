// Package pipeline converts Markdown content fragments to HTML for the
// template flow. The output is a fragment, not a document: the page shell
// comes from the HTML template.
package pipeline
