// Package output prints CLI results as plain text, JSON, YAML, a bordered
// table or a Markdown table.
//
// Table and Markdown need items implementing [Rower]; [Headed], [Titled],
// [Aligned] and [Bordered] refine the layout. Column widths are measured in
// terminal cells, so wide characters in templates keep tables aligned.
package output
