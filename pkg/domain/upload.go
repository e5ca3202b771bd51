package domain

// UploadTarget identifies one file selected by discovery. Targets are created
// during the directory scan and discarded once their upload attempt finishes.
type UploadTarget struct {
	// Path is the location of the file on disk, rooted at the scan directory.
	Path string
	// RelPath is the path relative to the scan root, used in reports.
	RelPath string
}

// UploadResult records the outcome of a single upload attempt. An empty Err
// marks success. Results are never mutated after creation.
type UploadResult struct {
	// FileName is the base name of the uploaded file.
	FileName string `json:"fileName"`
	// RelPath is the file's path relative to the scan root.
	RelPath string `json:"relativePath"`
	// URL is the public URL assigned by the media service on success.
	URL string `json:"url,omitempty"`
	// Err holds the failure message when the upload did not succeed.
	Err string `json:"error,omitempty"`
}

// Succeeded reports whether the upload attempt completed without error.
func (r UploadResult) Succeeded() bool { return r.Err == "" }

// Report aggregates the results of one batch. Results appear in discovery
// order, exactly one per discovered file.
type Report struct {
	Results []UploadResult
}

// Successful returns the results of uploads that succeeded, in order.
// The returned slice is never nil.
func (r Report) Successful() []UploadResult {
	out := make([]UploadResult, 0, len(r.Results))
	for _, res := range r.Results {
		if res.Succeeded() {
			out = append(out, res)
		}
	}

	return out
}

// Failed returns the results of uploads that failed, in order.
// The returned slice is never nil.
func (r Report) Failed() []UploadResult {
	out := make([]UploadResult, 0, len(r.Results))
	for _, res := range r.Results {
		if !res.Succeeded() {
			out = append(out, res)
		}
	}

	return out
}

// Total returns the number of upload attempts in the batch.
func (r Report) Total() int { return len(r.Results) }
