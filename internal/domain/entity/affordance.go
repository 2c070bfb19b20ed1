package entity

// Affordance — видимый интерактивный элемент страницы, найденный при discovery.
// Поля фиксируются один раз и после начала взаимодействия не перечитываются.
type Affordance struct {
	Text      string
	TagName   string
	ClassList []string
	ID        string
	Visible   bool
	Order     int
}

// ManifestEntry — запись манифеста clickable_elements_{ts}.json.
type ManifestEntry struct {
	Text      string   `json:"text"`
	TagName   string   `json:"tagName"`
	ClassList []string `json:"classList"`
	ID        string   `json:"id"`
	Selector  string   `json:"selector"`
}

func NewManifest(affordances []Affordance) []ManifestEntry {
	manifest := make([]ManifestEntry, 0, len(affordances))
	for _, a := range affordances {
		classes := a.ClassList
		if classes == nil {
			classes = []string{}
		}
		manifest = append(manifest, ManifestEntry{
			Text:      a.Text,
			TagName:   a.TagName,
			ClassList: classes,
			ID:        a.ID,
			Selector:  ManifestSelector(a),
		})
	}
	return manifest
}
