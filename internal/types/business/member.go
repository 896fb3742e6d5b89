package business

// Member is the read-only profile the catalog snapshot supplies for the
// contract target. The engine never mutates it.
type Member struct {
	ID         string            `json:"id"`
	Name       string            `json:"name"`
	Email      string            `json:"email"`
	Phones     []string          `json:"phones,omitempty"`
	Properties map[string]string `json:"properties,omitempty"`
}
