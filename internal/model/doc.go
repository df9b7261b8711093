package model

// Package model defines the data structures shared by the API server and the
// desktop client. Extraction adapters produce RawVideo, which the server turns
// into the VideoMetadata returned to callers. ViewState holds the client's
// lookup and download flags together with their transitions.
