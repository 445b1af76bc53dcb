package validation

import "github.com/dmitrijs2005/driverdesk/internal/drivers"

// Validator holds the rule lists chosen at start-up.
type Validator struct {
	driver  []Rule[drivers.Fields]
	license []Rule[drivers.License]
}

func New(requireCities bool) *Validator {
	return &Validator{driver: DriverRules(requireCities), license: LicenseRules()}
}

// ValidateDriver returns nil or Errors.
func (v *Validator) ValidateDriver(f drivers.Fields) error {
	return Run(v.driver, f)
}

// ValidateLicense returns nil or Errors.
func (v *Validator) ValidateLicense(l drivers.License) error {
	return Run(v.license, l)
}
