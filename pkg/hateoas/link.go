package hateoas

// Link is one navigable hypermedia entry. Href is a pointer because
// conditional relations (next on the last page, prev on the first) are
// emitted with a null href rather than omitted.
type Link struct {
	Rel    string  `json:"rel"`
	Href   *string `json:"href"`
	Method string  `json:"method"`
}

// Resource is embedded by every outward representation that carries links.
type Resource struct {
	Links []Link `json:"links"`
}

func (r *Resource) AddLink(rel string, href *string, method string) {
	r.Links = append(r.Links, Link{Rel: rel, Href: href, Method: method})
}
