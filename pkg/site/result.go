package site

// Result information about a build
type Result struct {
	// did it work or not
	Success bool `json:"success"`
	// this is for humans
	ErrorMessage string `json:"errorMessage,omitempty"`
	// where the page was written to
	Output string `json:"output,omitempty"`
	Stats  Stats  `json:"stats"`
	// the failure, if any
	Err error `json:"-"`
}

type Stats struct {
	NumberOfSections int `json:"numberOfSections"`
	NumberOfItems    int `json:"numberOfItems"`
	NumberOfAssets   int `json:"numberOfAssets"`
	// seconds
	LoadRuntime float64 `json:"loadRuntime"`
	// seconds
	RenderRuntime float64 `json:"renderRuntime"`
	// seconds
	OwnRuntime float64 `json:"ownRuntime"`
}
