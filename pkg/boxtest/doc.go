// Package boxtest provides measurement stubs for testing box compositions
// without a host renderer.
//
// FixedMeasurer answers with canned sizes and records its calls, which is
// what most composition tests want. FontMeasurer sizes string content
// against a real font face, giving plausible proportional measurements for
// golden-style tests and the boxplan tool.
package boxtest
