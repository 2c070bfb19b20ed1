package explorer

// tabsDiscovery — три видимых таба и один скрытый; у "News" нет ни id, ни классов.
const tabsDiscovery = `[
	{"text": "Overview", "tagName": "button", "classList": ["tab", "active"], "id": "tab-overview", "visible": true},
	{"text": "Financials", "tagName": "button", "classList": ["tab"], "id": "tab-financials", "visible": true},
	{"text": "Archive", "tagName": "button", "classList": ["tab"], "id": "tab-archive", "visible": false},
	{"text": "News", "tagName": "a", "classList": [], "id": "", "visible": true}
]`

const (
	initialHTML = `<!DOCTYPE html><html><head><title>Markets</title></head><body><div id="panel">Overview</div></body></html>`

	overviewHTML = `<!DOCTYPE html><html><body><div id="panel">Overview panel</div></body></html>`

	financialsHTML = `<!DOCTYPE html><html><body><div id="panel"><table id="fin"><tr><th>Revenue</th></tr><tr><td>42</td></tr></table></div></body></html>`

	newsHTML = `<!DOCTYPE html><html><body><div id="panel">News panel</div></body></html>`
)

func tabsSession() *fakeSession {
	return &fakeSession{
		discovery:   tabsDiscovery,
		initialHTML: initialHTML,
		afterClick: map[string]string{
			"#tab-overview":      overviewHTML,
			"#tab-financials":    financialsHTML,
			"//*[text()='News']": newsHTML,
		},
	}
}
