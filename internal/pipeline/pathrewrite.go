package pipeline

import (
	"io"
	"net/url"
	"path/filepath"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// rewrittenAttrs lists the attributes holding local resource paths.
var rewrittenAttrs = map[atom.Atom]string{
	atom.Img:    "src",
	atom.A:      "href",
	atom.Link:   "href",
	atom.Script: "src",
}

// RewriteRelativePaths turns relative resource paths into file:// URLs under
// sourceDir, so a document printed from a temporary file still finds its
// images and scripts. Paths escaping sourceDir are left alone. Only the
// rewritten tags are re-serialized; everything else is copied byte for byte.
// An empty sourceDir returns htmlContent unchanged.
func RewriteRelativePaths(htmlContent, sourceDir string) (string, error) {
	if sourceDir == "" {
		return htmlContent, nil
	}
	absDir, err := filepath.Abs(sourceDir)
	if err != nil {
		return "", err
	}

	var out strings.Builder
	out.Grow(len(htmlContent))
	z := html.NewTokenizer(strings.NewReader(htmlContent))
	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			if err := z.Err(); err != io.EOF {
				return "", err
			}
			return out.String(), nil
		}
		raw := z.Raw()
		if tt != html.StartTagToken && tt != html.SelfClosingTagToken {
			out.Write(raw)
			continue
		}
		tok := z.Token()
		if !rewriteToken(&tok, absDir) {
			out.Write(raw)
			continue
		}
		out.WriteString(tok.String())
	}
}

// rewriteToken rewrites the path attribute of tok and reports whether it changed.
func rewriteToken(tok *html.Token, dir string) bool {
	name, ok := rewrittenAttrs[tok.DataAtom]
	if !ok {
		return false
	}
	changed := false
	for i, a := range tok.Attr {
		if a.Key != name || !isRelativePath(a.Val) {
			continue
		}
		abs := filepath.Join(dir, filepath.FromSlash(a.Val))
		if !isPathUnderDir(abs, dir) {
			continue
		}
		tok.Attr[i].Val = pathToFileURL(abs)
		changed = true
	}
	return changed
}

func isRelativePath(path string) bool {
	if path == "" || strings.HasPrefix(path, "#") || strings.HasPrefix(path, "//") {
		return false
	}
	if u, err := url.Parse(path); err == nil && u.Scheme != "" {
		return false
	}
	return !filepath.IsAbs(path) && !strings.HasPrefix(path, "/")
}

func isPathUnderDir(absPath, dir string) bool {
	rel, err := filepath.Rel(dir, absPath)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

func pathToFileURL(absPath string) string {
	u := url.URL{Scheme: "file", Path: filepath.ToSlash(absPath)}
	return u.String()
}
