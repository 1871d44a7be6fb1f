// Package buffer implements the document text store as a table of lines.
//
// The buffer owns all document text. Every mutation goes through Insert or
// Delete, which validate their positions first and either apply the whole
// edit or leave the buffer untouched. Edits that contain or remove line
// breaks split and merge lines; the cost of any edit is proportional to
// the number of affected lines, never to the size of the document.
//
// Each line carries a dirty flag used by the highlighting pipeline to
// decide which lines need retokenizing. The buffer itself never reads the
// flag; it only sets it on mutated lines.
package buffer
