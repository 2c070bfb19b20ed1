package markup

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Tables возвращает outerHTML каждого <table> в порядке документа,
// включая вложенные таблицы. Пустой срез — нормальный результат.
func Tables(rawHTML string) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, fmt.Errorf("parse markup: %w", err)
	}

	fragments := []string{}
	var renderErr error
	doc.Find("table").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		fragment, err := goquery.OuterHtml(s)
		if err != nil {
			renderErr = fmt.Errorf("render table: %w", err)
			return false
		}
		fragments = append(fragments, fragment)
		return true
	})
	if renderErr != nil {
		return nil, renderErr
	}

	return fragments, nil
}
