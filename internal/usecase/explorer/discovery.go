package explorer

import (
	"context"
	"errors"
	"fmt"

	"page-explorer/internal/application/port/output"
	"page-explorer/internal/domain/entity"

	"github.com/ysmood/gson"
)

// AffordanceQuery — набор селекторов интерактивных элементов (табы, кнопки, nav-ссылки).
const AffordanceQuery = `button, [role="tab"], .tab, .nav-link, [data-toggle="tab"], a[href="#"]`

// discoveryScript reports every matched element together with its visibility;
// filtering happens on the Go side so the predicate is applied in one place.
const discoveryScript = `() => {
	function isVisible(el) {
		return !!(el.offsetWidth || el.offsetHeight || el.getClientRects().length);
	}
	return Array.from(document.querySelectorAll(` + "`" + AffordanceQuery + "`" + `)).map(el => ({
		text: (el.textContent || '').trim(),
		tagName: el.tagName.toLowerCase(),
		classList: Array.from(el.classList || []),
		id: el.id || '',
		visible: isVisible(el)
	}));
}`

var ErrDiscovery = errors.New("affordance discovery failed")

type Discovery struct {
	reader output.PageReader
}

func NewDiscovery(reader output.PageReader) *Discovery {
	return &Discovery{reader: reader}
}

// Discover returns visible affordances in document order. It only reads the page.
func (d *Discovery) Discover(ctx context.Context) ([]entity.Affordance, error) {
	res, err := d.reader.Evaluate(ctx, discoveryScript)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDiscovery, err)
	}
	return DecodeAffordances(res)
}

// DecodeAffordances converts the raw evaluation result into affordances,
// dropping invisible entries and assigning Order among the remaining ones.
func DecodeAffordances(res gson.JSON) ([]entity.Affordance, error) {
	if res.Nil() {
		return []entity.Affordance{}, nil
	}
	if _, ok := res.Val().([]interface{}); !ok {
		return nil, fmt.Errorf("%w: unexpected result %s", ErrDiscovery, res.JSON("", ""))
	}

	affordances := make([]entity.Affordance, 0, len(res.Arr()))
	for _, v := range res.Arr() {
		if !v.Get("visible").Bool() {
			continue
		}

		var classes []string
		for _, c := range v.Get("classList").Arr() {
			if cls := c.Str(); cls != "" {
				classes = append(classes, cls)
			}
		}

		affordances = append(affordances, entity.Affordance{
			Text:      v.Get("text").Str(),
			TagName:   v.Get("tagName").Str(),
			ClassList: classes,
			ID:        v.Get("id").Str(),
			Visible:   true,
			Order:     len(affordances),
		})
	}

	return affordances, nil
}
