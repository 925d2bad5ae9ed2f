package models

// ResourceKind identifies which family of CMS resource a scope refers to.
type ResourceKind string

const (
	KindPageType   ResourceKind = "page-type"
	KindBlog       ResourceKind = "blog"
	KindCollection ResourceKind = "collection"
)

// ResourceHandle identifies one fetchable scope: a page type, the blog, or
// one collection. Name is empty for the blog.
type ResourceHandle struct {
	Kind ResourceKind `json:"kind" yaml:"kind"`
	Name string       `json:"name,omitempty" yaml:"name,omitempty"`
}

// String renders the handle the way it appears in failed-scope lists and
// result source labels, e.g. "page-type:news" or "blog".
func (h ResourceHandle) String() string {
	if h.Name == "" {
		return string(h.Kind)
	}
	return string(h.Kind) + ":" + h.Name
}

// Mode selects between term search and markup-bloat audit.
type Mode string

const (
	ModeSearch Mode = "search"
	ModeAudit  Mode = "audit"
)

// RunRequest is the full input for one engine invocation. It is a plain
// value; the engine holds no state between runs.
type RunRequest struct {
	Token   string
	Preview bool
	Scopes  []ResourceHandle
	Mode    Mode
	Term    string
	Negate  bool
}
