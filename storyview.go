package storyview

// Version is the release of the storyview module.
var Version = "0.1.0"
