package candidate

import "time"

// Meta is the filesystem metadata the selector and resolver work from.
type Meta struct {
	Size     int64     `json:"size"`
	Created  time.Time `json:"created"`
	Modified time.Time `json:"modified"`
}

// Candidate is a file in one sibling repository whose name matches the
// file being written.
type Candidate struct {
	Path string `json:"path"` // absolute path
	Name string `json:"name"` // base name, equal to the target filename
	Repo string `json:"repo"` // repository identifier the file was found in
	Meta Meta   `json:"meta"` // zero until the selector stats the file
}

// Pair is the two most recently created candidates.
// MostRecent.Meta.Created is never before SecondMostRecent.Meta.Created.
type Pair struct {
	MostRecent       Candidate
	SecondMostRecent Candidate
}

// Resolution names the reference the writer should start from and the
// other candidate it was chosen over.
type Resolution struct {
	Reference Candidate
	Baseline  Candidate
}
