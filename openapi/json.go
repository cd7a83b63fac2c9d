package openapi

import "github.com/reoring/goswag/openapi/gojson"

// Driver is the JSON codec used by the package-level Marshal helpers.
// The default is selected at build time in openapi/gojson: goccy/go-json
// under the gojson build tag, encoding/json otherwise.
type Driver interface {
	Marshal(v any) ([]byte, error)
	MarshalIndent(v any, prefix, indent string) ([]byte, error)
	Unmarshal(data []byte, v any) error
	Name() string
}

var driver Driver = gojson.Driver()

// SetDriver replaces the JSON driver. Passing nil keeps the current one.
func SetDriver(d Driver) {
	if d != nil {
		driver = d
	}
}

// DriverName reports which JSON driver is active.
func DriverName() string { return driver.Name() }

// Marshal encodes v with the configured JSON driver.
func Marshal(v any) ([]byte, error) { return driver.Marshal(v) }

// MarshalIndent encodes v with the configured JSON driver, indented.
func MarshalIndent(v any, prefix, indent string) ([]byte, error) {
	return driver.MarshalIndent(v, prefix, indent)
}

// Unmarshal decodes data with the configured JSON driver.
func Unmarshal(data []byte, v any) error { return driver.Unmarshal(data, v) }
