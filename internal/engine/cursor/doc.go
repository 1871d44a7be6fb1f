// Package cursor tracks the insertion point and optional selection over a
// buffer. Horizontal movement steps whole grapheme clusters so multi-byte
// characters stay atomic; vertical movement preserves the visual column
// across lines of different lengths. After every buffer mutation the
// tracker remaps its position so it keeps referring to the same logical
// character.
package cursor
