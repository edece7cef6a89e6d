/*
Package observability provides tools for monitoring the Solstice engine.

It builds on the engine's lifecycle hooks: Combine fans events out to several
hook sets at once, and Recorder captures them for inspection in tests and
diagnostics. Adapters that expose metrics or event streams (HTTP, examples)
assemble their hooks with this package.
*/
package observability
