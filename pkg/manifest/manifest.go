// Package manifest implements parsing, selective merging, and serialization
// of the build manifest.
//
// The manifest is an untyped JSON document. Only one key path is
// structurally significant: helmCharts, a mapping from chart name to an
// opaque chart definition. Everything else passes through unchanged and
// unvalidated, so the document is modeled as a generic map rather than a
// fixed schema.
package manifest

import (
	"encoding/json"

	"sigs.k8s.io/yaml"
)

// DefaultPath is the manifest's path inside the repository.
const DefaultPath = "build.json"

// helmChartsKey is the one key chartpick interprets.
const helmChartsKey = "helmCharts"

// Manifest is an untyped build-description document.
type Manifest map[string]interface{}

// Parse decodes manifest content into a Manifest.
func Parse(content []byte) (Manifest, error) {
	var m Manifest
	if err := json.Unmarshal(content, &m); err != nil {
		return nil, WrapParseManifest(err)
	}
	return m, nil
}

// HelmCharts returns the manifest's chart mapping, or false if the key is
// absent or does not hold a mapping.
func (m Manifest) HelmCharts() (map[string]interface{}, bool) {
	charts, ok := m[helmChartsKey].(map[string]interface{})
	return charts, ok
}

// CherryPick returns a copy of target in which each named entry of the
// helmCharts mapping is replaced by the corresponding entry from source.
// Every other key of target, and every helmCharts entry not named, is
// preserved as-is. Chart definitions are opaque; they are copied by
// reference, never inspected.
//
// It fails if either manifest lacks the helmCharts mapping, or if source
// lacks any requested name. A single missing entry aborts the whole merge;
// there is no partial result.
func CherryPick(target, source Manifest, names []string) (Manifest, error) {
	targetCharts, ok := target.HelmCharts()
	if !ok {
		return nil, WrapNoHelmCharts("target")
	}
	sourceCharts, ok := source.HelmCharts()
	if !ok {
		return nil, WrapNoHelmCharts("source")
	}

	merged := make(Manifest, len(target))
	for key, value := range target {
		merged[key] = value
	}

	mergedCharts := make(map[string]interface{}, len(targetCharts))
	for name, chart := range targetCharts {
		mergedCharts[name] = chart
	}

	// Caller order is preserved, though each assignment targets a distinct
	// key so the result is order-independent.
	for _, name := range names {
		chart, ok := sourceCharts[name]
		if !ok {
			return nil, WrapChartNotFound(name)
		}
		mergedCharts[name] = chart
	}

	merged[helmChartsKey] = mergedCharts
	return merged, nil
}

// EncodeJSON serializes the manifest as JSON. With pretty set, output is
// indented with two spaces.
func EncodeJSON(m Manifest, pretty bool) ([]byte, error) {
	var (
		content []byte
		err     error
	)
	if pretty {
		content, err = json.MarshalIndent(m, "", "  ")
	} else {
		content, err = json.Marshal(m)
	}
	if err != nil {
		return nil, WrapMarshalManifest(err)
	}
	return content, nil
}

// EncodeYAML serializes the manifest as YAML by converting its JSON form.
func EncodeYAML(m Manifest) ([]byte, error) {
	content, err := json.Marshal(m)
	if err != nil {
		return nil, WrapMarshalManifest(err)
	}
	yamlContent, err := yaml.JSONToYAML(content)
	if err != nil {
		return nil, WrapJSONToYAML(err)
	}
	return yamlContent, nil
}
