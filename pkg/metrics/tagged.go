package metrics

// tagged acrescenta tags fixas a toda métrica enviada.
type tagged struct {
	next Provider
	tags []string
}

// WithTags devolve um Provider que adiciona as tags informadas (ex: "region:us-east-2")
// antes das tags de cada chamada.
func WithTags(p Provider, tags ...string) Provider {
	if len(tags) == 0 {
		return p
	}
	return &tagged{next: p, tags: tags}
}

func (t *tagged) merge(tags []string) []string {
	out := make([]string, 0, len(t.tags)+len(tags))
	out = append(out, t.tags...)
	return append(out, tags...)
}

func (t *tagged) Count(name string, value float64, tags []string) error {
	return t.next.Count(name, value, t.merge(tags))
}

func (t *tagged) Gauge(name string, value float64, tags []string) error {
	return t.next.Gauge(name, value, t.merge(tags))
}

func (t *tagged) Histogram(name string, value float64, tags []string) error {
	return t.next.Histogram(name, value, t.merge(tags))
}
