package render

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
	"gopkg.in/yaml.v3"

	"github.com/hass-crds/crd-gen/internal/catalog"
	"github.com/hass-crds/crd-gen/internal/crd"
)

const (
	basesDir     = "bases"
	combinedFile = "crds.yaml"
	separator    = "---\n"
)

// ErrDrift is returned by CheckCrdFiles when files on disk differ from the generated content.
var ErrDrift = errors.New("generated CRDs are not up to date")

// Marshal serializes a CRD document with stable key order.
func Marshal(doc *crd.CustomResourceDefinition) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// generateFiles renders one file per entity, in catalog order, followed by the combined manifest.
func generateFiles(entities []catalog.Entity, targetDir string) ([]outFile, error) {
	files := make([]outFile, 0, len(entities)+1)
	for _, e := range entities {
		content, err := Marshal(crd.Build(e))
		if err != nil {
			return nil, fmt.Errorf("error generating CRD content for %s: %w", e.Kind, err)
		}

		outputFile := filepath.Join(targetDir, basesDir, e.Singular+".yaml")
		files = append(files, outFile{
			name:       outputFile,
			content:    string(content),
			successMsg: "Generated CRD",
			successArgs: []any{
				"kind", e.Kind,
				"file", outputFile,
			},
		})
	}

	outputFile := filepath.Join(targetDir, combinedFile)
	files = append(files, outFile{
		name:       outputFile,
		content:    combine(files),
		successMsg: "Combined CRDs written",
		successArgs: []any{
			"count", len(entities),
			"file", outputFile,
		},
	})
	return files, nil
}

// combine concatenates the files sorted by name, after a banner, separated by "---".
func combine(files []outFile) string {
	sorted := slices.Clone(files)
	slices.SortFunc(sorted, func(a, b outFile) int { return strings.Compare(a.name, b.name) })

	var sb strings.Builder
	sb.WriteString(banner(len(sorted)))
	for i, f := range sorted {
		sb.WriteString(f.content)
		if i < len(sorted)-1 {
			sb.WriteString(separator)
		}
	}
	return sb.String()
}

func banner(count int) string {
	var sb strings.Builder
	sb.WriteString("# Generated CRDs for hass-crds\n")
	fmt.Fprintf(&sb, "# API Group: %s\n", crd.GroupVersion.Group)
	fmt.Fprintf(&sb, "# Version: %s\n", crd.GroupVersion.Version)
	fmt.Fprintf(&sb, "# Total CRDs: %d\n", count)
	sb.WriteString("#\n")
	fmt.Fprintf(&sb, "# Install with: kubectl apply -f %s\n", combinedFile)
	fmt.Fprintf(&sb, "# Verify with: kubectl get crds | grep %s\n", crd.GroupVersion.Group)
	sb.WriteString(separator)
	return sb.String()
}

// WriteCrdFiles generates and writes all CRD files below targetDir.
func WriteCrdFiles(entities []catalog.Entity, targetDir string) ([]string, error) {
	files, err := generateFiles(entities, targetDir)
	if err != nil {
		return nil, err
	}
	if err := writeFiles(files); err != nil {
		return nil, err
	}
	return names(files), nil
}

// CheckCrdFiles compares the generated files with the ones below targetDir.
// It returns ErrDrift together with a unified diff per outdated file.
func CheckCrdFiles(entities []catalog.Entity, targetDir string) error {
	files, err := generateFiles(entities, targetDir)
	if err != nil {
		return err
	}

	var errs []error
	for _, f := range files {
		current, err := os.ReadFile(f.name)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("error reading file: %w", err)
		}
		if string(current) == f.content {
			continue
		}
		diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
			A:        difflib.SplitLines(string(current)),
			B:        difflib.SplitLines(f.content),
			FromFile: f.name,
			ToFile:   f.name + " (generated)",
			Context:  3,
		})
		if err != nil {
			return fmt.Errorf("error creating diff: %w", err)
		}
		slog.Warn("CRD file is outdated", "file", f.name)
		errs = append(errs, fmt.Errorf("%w: %s\n%s", ErrDrift, f.name, diff))
	}
	return errors.Join(errs...)
}

func writeFiles(files []outFile) error {
	for _, f := range files {
		dir := filepath.Dir(f.name)

		// Create the directory if it doesn't exist
		if err := os.MkdirAll(dir, os.ModePerm); err != nil {
			return fmt.Errorf("error creating directory: %w", err)
		}

		if err := os.WriteFile(f.name, []byte(f.content), 0o644); err != nil {
			return fmt.Errorf("error writing output file: %w", err)
		}

		slog.With(f.successArgs...).Info(f.successMsg)
	}
	return nil
}

func names(files []outFile) []string {
	res := make([]string, len(files))
	for i, f := range files {
		res[i] = f.name
	}
	return res
}

type outFile struct {
	name        string
	content     string
	successMsg  string
	successArgs []any
}
