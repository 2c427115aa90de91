//go:build generate
// +build generate

// Regenerate the CRD manifests below config/crd
//go:generate go run ./cmd/generate-hass-crds --target config/crd

package gen
