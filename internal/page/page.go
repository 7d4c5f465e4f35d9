// Package page holds the static HTML document served for every request.
package page

import (
	"net/http"
	"strconv"
)

const (
	ContentType = "text/html"
	Heading     = "Fancy Node App"
	ImageURL    = "https://1.bp.blogspot.com/-ioP8upBQiXo/T_pNt_EY4aI/AAAAAAAAD-8/KHhoI2Jcc5s/s1600/crystal+rotating+gif.gif"
)

var document = []byte(`<!doctype html>
<html lang="en">
<head>
  <meta charset="UTF-8"/>
  <title>Document</title>
</head>
<body>
  <h1>` + Heading + `</h1>
  <img src="` + ImageURL + `">
</body>
</html>
`)

// Body returns a copy of the document so callers can't alter what gets served.
func Body() []byte {
	b := make([]byte, len(document))
	copy(b, document)
	return b
}

// Handler writes the document with a 200 status. The request is never inspected.
type Handler struct{}

func (Handler) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", ContentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(document)))
	w.WriteHeader(http.StatusOK)
	// A client that hangs up mid-write is not our problem.
	_, _ = w.Write(document)
}
