package entity

// Solution is one offering in the company profile. Solutions are referenced
// by name when a generated post is narrowed to a topic.
type Solution struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
}

// CompanyProfile describes the company every prompt is written for. The
// default profile ships with the binary and callers may override any field
// per request; profiles are never persisted.
type CompanyProfile struct {
	Name                string     `json:"name" yaml:"name"`
	Description         string     `json:"description" yaml:"description"`
	Industry            string     `json:"industry" yaml:"industry"`
	TargetAudience      string     `json:"targetAudience" yaml:"target_audience"`
	UniqueSellingPoints []string   `json:"uniqueSellingPoints" yaml:"unique_selling_points"`
	Solutions           []Solution `json:"solutions" yaml:"solutions"`
	Tone                string     `json:"tone" yaml:"tone"`
}

// SolutionNames returns the names of all solutions in profile order.
func (p CompanyProfile) SolutionNames() []string {
	names := make([]string, 0, len(p.Solutions))
	for _, s := range p.Solutions {
		names = append(names, s.Name)
	}
	return names
}
