package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"postforge/internal/domain/entity"
)

//go:embed company.yaml
var defaultProfileYAML []byte

// LoadCompanyProfile returns the company profile every prompt is built for.
// When COMPANY_PROFILE_PATH points at a YAML file that file is loaded,
// otherwise the embedded default profile is used. The profile is static
// configuration; request bodies may still override individual fields.
func LoadCompanyProfile() (entity.CompanyProfile, error) {
	data := defaultProfileYAML
	if path := os.Getenv("COMPANY_PROFILE_PATH"); path != "" {
		loaded, err := os.ReadFile(path)
		if err != nil {
			return entity.CompanyProfile{}, fmt.Errorf("read company profile: %w", err)
		}
		data = loaded
	}

	var profile entity.CompanyProfile
	if err := yaml.Unmarshal(data, &profile); err != nil {
		return entity.CompanyProfile{}, fmt.Errorf("parse company profile: %w", err)
	}
	if profile.Name == "" {
		return entity.CompanyProfile{}, fmt.Errorf("company profile: name is required")
	}
	return profile, nil
}
