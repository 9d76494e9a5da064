package manifest

import (
	"errors"
	"fmt"
)

// Manifest package errors.
var (
	// ErrParseManifest is returned when manifest content is not valid JSON.
	ErrParseManifest = errors.New("failed to parse manifest")

	// ErrNoHelmCharts is returned when a manifest lacks the helmCharts
	// mapping, or the key holds something other than a mapping.
	ErrNoHelmCharts = errors.New("manifest has no helmCharts mapping")

	// ErrChartNotFound is returned when a requested chart is absent from the
	// source manifest's helmCharts mapping.
	ErrChartNotFound = errors.New("chart not found in source manifest")

	// ErrMarshalManifest is returned when a manifest cannot be serialized.
	ErrMarshalManifest = errors.New("failed to marshal manifest")

	// ErrJSONToYAML is returned when JSON cannot be converted to YAML.
	ErrJSONToYAML = errors.New("failed to convert manifest to YAML")
)

// WrapParseManifest wraps ErrParseManifest with the parser's diagnostic.
func WrapParseManifest(err error) error {
	return fmt.Errorf("%w: %w", ErrParseManifest, err)
}

// WrapNoHelmCharts wraps ErrNoHelmCharts naming which manifest lacks the key.
func WrapNoHelmCharts(side string) error {
	return fmt.Errorf("%w: %s manifest", ErrNoHelmCharts, side)
}

// WrapChartNotFound wraps ErrChartNotFound with the requested chart name.
func WrapChartNotFound(name string) error {
	return fmt.Errorf("%w: %q", ErrChartNotFound, name)
}

// WrapMarshalManifest wraps ErrMarshalManifest with the original error.
func WrapMarshalManifest(err error) error {
	return fmt.Errorf("%w: %w", ErrMarshalManifest, err)
}

// WrapJSONToYAML wraps ErrJSONToYAML with the original error.
func WrapJSONToYAML(err error) error {
	return fmt.Errorf("%w: %w", ErrJSONToYAML, err)
}
