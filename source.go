package nvdocs

import "strings"

// Source describes one documentation collection: a topic identifier, a
// display name, a base URL, and the ordered page suffixes appended to it.
type Source struct {
	Topic   string   `json:"topic"`
	Name    string   `json:"name"`
	BaseURL string   `json:"baseUrl"`
	Pages   []string `json:"pages"`
}

// Validate returns an error if the source contains invalid fields.
func (s *Source) Validate() error {
	if s.Topic == "" {
		return Errorf(EINVALID, "source topic required")
	}
	if s.Name == "" {
		return Errorf(EINVALID, "source name required")
	}
	if s.BaseURL == "" {
		return Errorf(EINVALID, "source base URL required")
	}
	return nil
}

// PageURL returns the full URL for a page suffix. The empty suffix denotes
// the base page. Suffixes are concatenated as-is; they carry their own
// leading slash.
func (s *Source) PageURL(page string) string {
	return s.BaseURL + page
}

// NormalizeTopic canonicalizes a topic identifier: lowercased, with spaces
// and hyphens mapped to underscores. "MLNX-OFED" and "mlnx ofed" both
// resolve to "mlnx_ofed".
func NormalizeTopic(topic string) string {
	topic = strings.ToLower(topic)
	topic = strings.ReplaceAll(topic, "-", "_")
	return strings.ReplaceAll(topic, " ", "_")
}

// Registry is an immutable, ordered collection of documentation sources.
// Lookup is by normalized topic; iteration follows registration order so
// listings and search sweeps are deterministic.
type Registry struct {
	sources []Source
	byTopic map[string]int
}

// NewRegistry builds a registry from the given sources. Topics are stored
// in normalized form. Returns ECONFLICT if two sources normalize to the
// same topic.
func NewRegistry(sources ...Source) (*Registry, error) {
	r := &Registry{
		sources: make([]Source, 0, len(sources)),
		byTopic: make(map[string]int, len(sources)),
	}
	for _, src := range sources {
		if err := src.Validate(); err != nil {
			return nil, err
		}
		src.Topic = NormalizeTopic(src.Topic)
		if _, ok := r.byTopic[src.Topic]; ok {
			return nil, Errorf(ECONFLICT, "duplicate topic %q", src.Topic)
		}
		r.byTopic[src.Topic] = len(r.sources)
		r.sources = append(r.sources, src)
	}
	return r, nil
}

// Lookup returns the source registered under topic, normalizing the query
// first. Returns ENOTFOUND naming every registered topic if the normalized
// topic is unknown.
func (r *Registry) Lookup(topic string) (*Source, error) {
	normalized := NormalizeTopic(topic)
	idx, ok := r.byTopic[normalized]
	if !ok {
		return nil, Errorf(ENOTFOUND, "Unknown topic '%s'. Available: %s",
			normalized, strings.Join(r.Topics(), ", "))
	}
	src := r.sources[idx]
	return &src, nil
}

// Topics returns the registered topic identifiers in registration order.
func (r *Registry) Topics() []string {
	topics := make([]string, len(r.sources))
	for i := range r.sources {
		topics[i] = r.sources[i].Topic
	}
	return topics
}

// Sources returns a copy of the registered sources in registration order.
func (r *Registry) Sources() []Source {
	out := make([]Source, len(r.sources))
	copy(out, r.sources)
	return out
}

// Len returns the number of registered sources.
func (r *Registry) Len() int {
	return len(r.sources)
}
