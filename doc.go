/*
Package storyview is an interactive console viewer for hierarchical story
documents.

A story is a JSON (or YAML, or markdown) file holding a title, a description
and a tree of sections. The viewer lists the stories of a directory, then
shows the chosen one section by section in pre-order, asking for a decision
after each:

  - y continues with the next section,
  - n abandons the document and returns to the file list,
  - q (or quit) leaves the program from any prompt.

# Layout

  - pkg/domain: the document model and the Advance/Stop/Quit result.
  - pkg/adapters/document: JSON, YAML and markdown decoders.
  - pkg/adapters/file: directory listing.
  - pkg/runner: line input and the confirm gate.
  - internal/runtime: the pagination engine.
  - internal/cli: the selection loop behind cmd/storyview.
*/
package storyview
