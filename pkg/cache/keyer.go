package cache

// Keyer generates cache keys. Implementations must be deterministic: the same
// inputs always yield the same key.
type Keyer interface {
	// LayoutKey identifies a geometry document computed from a scenario.
	LayoutKey(scenarioHash string, opts LayoutKeyOpts) string
	// ArtifactKey identifies a rendered artifact of a geometry document.
	ArtifactKey(documentHash string, opts ArtifactKeyOpts) string
}

// LayoutKeyOpts holds the overrides applied on top of a scenario before it
// is laid out.
type LayoutKeyOpts struct {
	Width     float64 `json:"width,omitempty"`
	Columns   int     `json:"columns,omitempty"`
	Direction string  `json:"direction,omitempty"`
	Sticky    bool    `json:"sticky,omitempty"`
}

// ArtifactKeyOpts holds the render settings that change an artifact's bytes.
type ArtifactKeyOpts struct {
	Format   string  `json:"format"`
	Scale    float64 `json:"scale,omitempty"`
	Labels   bool    `json:"labels,omitempty"`
	Sections bool    `json:"sections,omitempty"`
}

// DefaultKeyer hashes key inputs with SHA-256.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// LayoutKey returns "layout:<hash>".
func (DefaultKeyer) LayoutKey(scenarioHash string, opts LayoutKeyOpts) string {
	return hashKey("layout", scenarioHash, opts)
}

// ArtifactKey returns "artifact:<hash>".
func (DefaultKeyer) ArtifactKey(documentHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", documentHash, opts)
}
