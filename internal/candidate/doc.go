// Package candidate finds same-named files across sibling documentation
// repositories and narrows them down to a single reference. The Locator
// globs each repository's category directory, SelectRecent keeps the two
// most recently created matches, and Resolve picks the authoritative one
// of that pair using size and modification time.
package candidate
