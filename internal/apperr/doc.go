// Package apperr classifies the failures of a reference lookup into usage,
// insufficient-data, I/O, and glob errors. The CLI's single top-level
// handler uses the kind to choose the message and exit status; nothing in
// the core terminates the process on its own.
package apperr
