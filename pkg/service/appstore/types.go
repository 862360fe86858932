package appstore

import (
	"encoding/json"

	"github.com/m-mizutani/goerr/v2"
)

type searchResponse struct {
	ResultCount int `json:"resultCount"`
	Results     []struct {
		TrackID int64 `json:"trackId"`
	} `json:"results"`
}

type feedResponse struct {
	Feed feed `json:"feed"`
}

type feed struct {
	// entry is an array of reviews, except when the feed has exactly one
	// review and returns a bare object instead
	Entry json.RawMessage `json:"entry"`
}

type label struct {
	Label string `json:"label"`
}

type feedEntry struct {
	Author struct {
		Name label `json:"name"`
	} `json:"author"`
	Rating  label `json:"im:rating"`
	Content label `json:"content"`
	Title   label `json:"title"`
	Updated label `json:"updated"`
}

// Entries normalizes the feed's entry field to a slice, handling the
// single-entry-object quirk of the RSS JSON format
func (f *feed) Entries() ([]feedEntry, error) {
	if len(f.Entry) == 0 {
		return nil, nil
	}

	var entries []feedEntry
	if err := json.Unmarshal(f.Entry, &entries); err == nil {
		return entries, nil
	}

	var single feedEntry
	if err := json.Unmarshal(f.Entry, &single); err != nil {
		return nil, goerr.Wrap(err, "feed entry is neither array nor object")
	}

	return []feedEntry{single}, nil
}
