package order

import (
	"fmt"

	"remont/internal/pkg/errs"
)

// ServiceType is the declared handling mode of an order. It is fixed at
// creation and branches which sub-path of the lifecycle applies; only the
// administrative override may change it afterwards as an out-of-band
// correction.
type ServiceType int

const (
	// ServiceTypeUnknown represents an invalid or undefined service type.
	ServiceTypeUnknown ServiceType = iota

	// ServiceTypeInstallation is an on-site installation job.
	ServiceTypeInstallation
	// ServiceTypeFixOnSite is a repair performed at the customer's address.
	ServiceTypeFixOnSite
	// ServiceTypeFixOffSite is a workshop repair with pickup/return logistics.
	ServiceTypeFixOffSite
)

func getServiceTypeStrings() map[ServiceType]string {
	return map[ServiceType]string{
		ServiceTypeUnknown:      "UNKNOWN",
		ServiceTypeInstallation: "INSTALLATION",
		ServiceTypeFixOnSite:    "FIX_ON_SITE",
		ServiceTypeFixOffSite:   "FIX_OFF_SITE",
	}
}

// getServiceTypeLabels returns the Georgian display labels used when the
// administrative override corrects an order's service type.
func getServiceTypeLabels() map[ServiceType]string {
	return map[ServiceType]string{
		ServiceTypeInstallation: "მონტაჟი",
		ServiceTypeFixOnSite:    "შეკეთება ადგილზე",
		ServiceTypeFixOffSite:   "შეკეთება სერვისცენტრში",
	}
}

// ServiceTypeFromString parses the wire name of a service type.
func ServiceTypeFromString(s string) (ServiceType, error) {
	for t, name := range getServiceTypeStrings() {
		if name == s && t != ServiceTypeUnknown {
			return t, nil
		}
	}
	return ServiceTypeUnknown, errs.NewValueIsInvalidErrorWithCause("serviceType",
		fmt.Errorf("%q is not a valid service type", s))
}

// Validate checks if the value is one of the three defined service types.
func (t ServiceType) Validate() error {
	switch t {
	case ServiceTypeInstallation, ServiceTypeFixOnSite, ServiceTypeFixOffSite:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("serviceType",
			fmt.Errorf("%d is not a valid service type", int(t)))
	}
}

// String returns the canonical name of the service type.
func (t ServiceType) String() string {
	if str, ok := getServiceTypeStrings()[t]; ok {
		return str
	}
	return "UNKNOWN"
}

// Label returns the Georgian display label of the service type.
func (t ServiceType) Label() string {
	if label, ok := getServiceTypeLabels()[t]; ok {
		return label
	}
	return t.String()
}
