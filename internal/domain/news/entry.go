package news

// Kind distinguishes the two lists on the site: dated update history and
// dateless event announcements.
type Kind string

const (
	KindUpdate Kind = "update"
	KindEvent  Kind = "event"
)

func (k Kind) Valid() bool {
	return k == KindUpdate || k == KindEvent
}

// Entry is one row of a news list. Events carry no display date.
type Entry struct {
	Date    string `json:"date,omitempty"`
	Content string `json:"content"`
}
