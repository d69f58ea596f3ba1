package siteparser

import (
	"context"
	"io"
	"net/http"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/pkg/errors"

	"timetable_ingest/helper"
)

var ErrFileNotFound = errors.New("timetable link not found on page")

// Sources are the Drive ids of the spreadsheets linked from the timetable page.
// ResitId is empty outside resit periods.
type Sources struct {
	TimetableId string
	ResitId     string
}

func GetWebPage(ctx context.Context, url string) (*goquery.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Wrap(err, "timetable page request")
	}
	res, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "get timetable page")
	}
	defer func(Body io.ReadCloser) {
		err := Body.Close()
		if err != nil {
			return
		}
	}(res.Body)
	if res.StatusCode != http.StatusOK {
		return nil, errors.New("HTTP status " + res.Status)
	}
	doc, err := goquery.NewDocumentFromReader(res.Body)
	if err != nil {
		return nil, errors.Wrap(err, "parse timetable page")
	}
	return doc, nil
}

// ParseWebPage picks the first Drive link whose text mentions "resit" as the
// resit table and the first other one mentioning "timetable" as the master
// timetable.
func ParseWebPage(doc *goquery.Document) (Sources, error) {
	var src Sources
	doc.Find("a").Each(func(i int, s *goquery.Selection) {
		id := fileId(helper.First(s.Attr("href")))
		if id == "" {
			return
		}
		text := strings.ToLower(s.Text())
		switch {
		case strings.Contains(text, "resit"):
			if src.ResitId == "" {
				src.ResitId = id
			}
		case strings.Contains(text, "timetable"):
			if src.TimetableId == "" {
				src.TimetableId = id
			}
		}
	})
	if src.TimetableId == "" {
		return src, ErrFileNotFound
	}
	return src, nil
}

// fileId extracts <id> from .../d/<id>/... Drive and Sheets links.
func fileId(href string) string {
	if !strings.Contains(href, "google.com") {
		return ""
	}
	parts := strings.Split(href, "/")
	for i := 0; i+1 < len(parts); i++ {
		if parts[i] == "d" {
			return strings.SplitN(parts[i+1], "?", 2)[0]
		}
	}
	return ""
}
