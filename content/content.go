// contains data structures that describe the content of a profile page
package content

const (
	// DefaultOrder is used for sections and subsections without an explicit order
	DefaultOrder = 1000
	// DefaultLanguage page language when the site config does not set one
	DefaultLanguage = "ja"
	// DefaultOutputDir where the page is written when the site config does not set one
	DefaultOutputDir = "docs"
	// DefaultOutputFile name of the rendered page
	DefaultOutputFile = "index.html"
	// DefaultAssetsMountPath path below the output dir static assets are copied to
	DefaultAssetsMountPath = "assets"
)
