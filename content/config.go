package content

import "strings"

// SiteConfig site wide settings read from config.toml
type SiteConfig struct {
	Title                  string  `toml:"title" json:"title"`
	Language               string  `toml:"language,omitempty" json:"language,omitempty"`
	GoogleSiteVerification string  `toml:"google_site_verification,omitempty" json:"googleSiteVerification,omitempty"`
	Build                  *Build  `toml:"build,omitempty" json:"build,omitempty"`
	Assets                 *Assets `toml:"assets,omitempty" json:"assets,omitempty"`
}

// Build where to put the rendered page
type Build struct {
	OutputDir  string `toml:"output_dir,omitempty" json:"outputDir,omitempty"`
	OutputFile string `toml:"output_file,omitempty" json:"outputFile,omitempty"`
}

// Assets static files to publish next to the page. Files deleted from Dir are
// removed from the output on the next build, other files below the mount path
// are never touched.
type Assets struct {
	Dir       string `toml:"dir,omitempty" json:"dir,omitempty"`
	MountPath string `toml:"mount_path,omitempty" json:"mountPath,omitempty"`
}

// LanguageOrDefault configured language or DefaultLanguage
func (c *SiteConfig) LanguageOrDefault() string {
	if c.Language == "" {
		return DefaultLanguage
	}
	return c.Language
}

// OutputDir configured output dir or DefaultOutputDir
func (c *SiteConfig) OutputDir() string {
	if c.Build != nil && strings.TrimSpace(c.Build.OutputDir) != "" {
		return c.Build.OutputDir
	}
	return DefaultOutputDir
}

// OutputFile configured output file or DefaultOutputFile
func (c *SiteConfig) OutputFile() string {
	if c.Build != nil && strings.TrimSpace(c.Build.OutputFile) != "" {
		return c.Build.OutputFile
	}
	return DefaultOutputFile
}

// AssetsMountPath path below the output the assets are published to, without
// leading or trailing slashes
func (c *SiteConfig) AssetsMountPath() string {
	if c.Assets != nil {
		if p := strings.Trim(c.Assets.MountPath, "/ "); p != "" {
			return p
		}
	}
	return DefaultAssetsMountPath
}
