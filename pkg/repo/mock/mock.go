package mock

import (
	"os"
	"path/filepath"
	"testing"
)

const (
	ConfigTOML = `title = "Test Site"
`
	ProfileTOML = `lead = "Researcher in [distributed systems](https://example.com/ds)."

[name]
ja = "太郎"
en = "Taro"

[affiliation]
affiliation = "Example University"
lines = ["Graduate School of Informatics"]

[contact]
email = "taro@example.com"
`
	SectionBTOML = `name = "Section B"
key = "b"
order = 1
`
	SectionATOML = `name = "Section A"
key = "a"
order = 2
sort = { by = "start_date", rev = true }

[[items]]
date = "2020-01-01"
title = "Old"

[[items]]
start_date = "2021-05"
title = "New"

[[subsections]]
name = "Sub A1"
order = 1
sort = { by = "date", rev = true }

  [[subsections.items]]
  date = "2019"
  title = "Sub Old"

  [[subsections.items]]
  start_date = "2022-01-01"
  title = "Sub New"
`
	NestedTOML = `name = "Ignored"
key = "ignored"
order = 0
`
)

// Files a minimal but complete content root
func Files() map[string]string {
	return map[string]string{
		"config.toml":                  ConfigTOML,
		"profile.toml":                 ProfileTOML,
		"sections/b.toml":              SectionBTOML,
		"sections/a.toml":              SectionATOML,
		"sections/nested/ignored.toml": NestedTOML,
	}
}

// WriteContent writes files relative to a fresh temp dir and returns the dir
func WriteContent(tb testing.TB, files map[string]string) string {
	tb.Helper()
	root := tb.TempDir()
	for name, body := range files {
		Write(tb, filepath.Join(root, name), body)
	}
	return root
}

// Write creates parent directories and writes body to path
func Write(tb testing.TB, path, body string) {
	tb.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		tb.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		tb.Fatal(err)
	}
}
