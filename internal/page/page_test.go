package page

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

// collect walks the parsed tree and returns every element with the given tag.
func collect(n *html.Node, tag string) []*html.Node {
	var found []*html.Node
	if n.Type == html.ElementNode && n.Data == tag {
		found = append(found, n)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		found = append(found, collect(c, tag)...)
	}
	return found
}

func textContent(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}

func attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

func TestBody_Structure(t *testing.T) {
	body := Body()
	require.True(t, bytes.HasPrefix(body, []byte("<!doctype html>")))

	doc, err := html.Parse(bytes.NewReader(body))
	require.NoError(t, err)

	headings := collect(doc, "h1")
	require.Len(t, headings, 1)
	assert.Equal(t, Heading, textContent(headings[0]))

	images := collect(doc, "img")
	require.Len(t, images, 1)
	src, ok := attr(images[0], "src")
	require.True(t, ok)
	assert.Equal(t, ImageURL, src)

	titles := collect(doc, "title")
	require.Len(t, titles, 1)
	assert.Equal(t, "Document", textContent(titles[0]))

	metas := collect(doc, "meta")
	require.Len(t, metas, 1)
	charset, ok := attr(metas[0], "charset")
	require.True(t, ok)
	assert.Equal(t, "UTF-8", charset)
}

func TestBody_ReturnsCopy(t *testing.T) {
	b := Body()
	b[0] = 'X'

	assert.Equal(t, byte('<'), Body()[0])
}

func TestHandler_ServeHTTP(t *testing.T) {
	testCases := []struct {
		name   string
		method string
		target string
		body   string
		header map[string]string
	}{
		{
			name:   "get_root",
			method: http.MethodGet,
			target: "/",
		},
		{
			name:   "post_with_body",
			method: http.MethodPost,
			target: "/anything",
			body:   `{"foo": "bar"}`,
			header: map[string]string{"Content-Type": "application/json"},
		},
		{
			name:   "delete_nested_path",
			method: http.MethodDelete,
			target: "/a/b/c?x=1",
		},
		{
			name:   "custom_method",
			method: "BREW",
			target: "/pot",
			header: map[string]string{"Accept": "application/coffee-pot-command"},
		},
	}

	want := Body()
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.target, strings.NewReader(tc.body))
			for k, v := range tc.header {
				req.Header.Set(k, v)
			}
			rr := httptest.NewRecorder()

			Handler{}.ServeHTTP(rr, req)

			assert.Equal(t, http.StatusOK, rr.Code)
			assert.Equal(t, ContentType, rr.Header().Get("Content-Type"))
			assert.Equal(t, strconv.Itoa(len(want)), rr.Header().Get("Content-Length"))
			assert.Equal(t, want, rr.Body.Bytes())
		})
	}
}
