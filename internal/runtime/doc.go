// Package runtime implements the pagination engine: a pre-order walk of a
// document tree that renders each section and waits for a decision before
// moving on.
package runtime
