package generator

import "context"

// mockPost is the canned completion returned by the mock provider.
const mockPost = "⚡ Ready to electrify your fleet? Our end-to-end charging solutions keep your vehicles moving and your costs down. 🚚🌱 Join the businesses already making the switch! #FleetElectrification #EV"

// Mock returns a canned post without calling any external API. It keeps the
// service demoable when no credential is configured; selecting it is an
// explicit choice via LLM_PROVIDER=mock, never a silent fallback.
type Mock struct{}

// NewMock creates a mock generator.
func NewMock() *Mock {
	return &Mock{}
}

// Generate returns the canned post.
func (m *Mock) Generate(_ context.Context, _, _ string) (string, error) {
	return mockPost, nil
}
