// Package render turns a loaded content tree into the profile page.
package render

import (
	"bytes"
	_ "embed"
	"html/template"
	"io"

	"github.com/foomo/profilesite/content"
	"github.com/foomo/profilesite/pkg/links"
	"github.com/pkg/errors"
	"golang.org/x/text/language"
)

//go:embed templates/index.html
var indexTemplate string

var page = template.Must(template.New("index").Funcs(template.FuncMap{
	"links":    links.Render,
	"itemLine": ItemLine,
}).Parse(indexTemplate))

type pageData struct {
	*content.Tree
	Lang           string
	StylesheetHref string
}

// Write renders the page for tree into w
func Write(w io.Writer, tree *content.Tree) error {
	if tree == nil || tree.Config == nil || tree.Profile == nil {
		return errors.New("incomplete content tree")
	}
	data := pageData{
		Tree:           tree,
		Lang:           Lang(tree.Config.LanguageOrDefault()),
		StylesheetHref: "/" + tree.Config.AssetsMountPath() + "/style.css",
	}
	if err := page.Execute(w, data); err != nil {
		return errors.Wrap(err, "failed to execute page template")
	}
	return nil
}

// Page renders the page for tree
func Page(tree *content.Tree) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, tree); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Lang canonical BCP 47 form of the configured language
func Lang(s string) string {
	tag, err := language.Parse(s)
	if err != nil {
		return content.DefaultLanguage
	}
	return tag.String()
}
