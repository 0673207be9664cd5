package validate

// DefaultCompliantTags: теги продукта, любой из которых означает соответствие CARB.
var DefaultCompliantTags = []string{
	"EPA:Compliant",
	"EPA:N/A",
	"California Compliant",
	"Non-CARB:Y",
}

var defaultMatcher = NewTagMatcher(nil)

// TagMatcher: проверка списка тегов против набора тегов соответствия (точное совпадение).
type TagMatcher struct {
	compliant map[string]struct{}
}

// NewTagMatcher: конструктор; пустой список → DefaultCompliantTags.
func NewTagMatcher(tags []string) *TagMatcher {
	if len(tags) == 0 {
		tags = DefaultCompliantTags
	}
	m := &TagMatcher{compliant: make(map[string]struct{}, len(tags))}
	for _, tag := range tags {
		if tag == "" {
			continue
		}
		m.compliant[tag] = struct{}{}
	}
	return m
}

// Compliant: true, если среди тегов есть хотя бы один тег соответствия.
// nil или пустой список: несоответствие.
func (m *TagMatcher) Compliant(tags []string) bool {
	for _, tag := range tags {
		if _, ok := m.compliant[tag]; ok {
			return true
		}
	}
	return false
}

// TagsCompliant: Compliant с набором по умолчанию.
func TagsCompliant(tags []string) bool { return defaultMatcher.Compliant(tags) }
