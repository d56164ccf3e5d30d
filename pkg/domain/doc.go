/*
Package domain contains the story document model read by the viewer.

It is kept pure and free of I/O: loaders build values of these types and the
pagination engine only reads them.

# Key Entities

  - Document: the loaded unit, with a title, a description and top-level Sections.
  - Section: a named block of content lines with ordered child Sections.
  - Result: the tri-state outcome of a gate or a traversal (Advance, Stop, Quit).
  - Hooks: optional callbacks fired while the engine walks the tree.
*/
package domain
