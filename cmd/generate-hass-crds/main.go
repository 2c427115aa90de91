package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/hass-crds/crd-gen/internal/catalog"
	"github.com/hass-crds/crd-gen/internal/crd"
	"github.com/hass-crds/crd-gen/internal/openapi"
	"github.com/hass-crds/crd-gen/internal/render"
	"github.com/hass-crds/crd-gen/internal/schema"
)

var (
	target         string
	check          bool
	skipValidation bool
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "generate-hass-crds",
		Short:        "Generate the CRDs of the Home Assistant MQTT entity types",
		SilenceUsage: true,
		RunE:         run,
	}
	rootCmd.Flags().StringVarP(&target, "target", "t", filepath.Join("config", "crd"),
		"The target directory; CRDs are written to <target>/bases, the combined file to <target>/crds.yaml")
	rootCmd.Flags().BoolVarP(&check, "check", "c", false, "Do not write, fail if the files in target are not up to date")
	rootCmd.Flags().BoolVar(&skipValidation, "skip-validation", false, "Skip the catalog and schema validation")
	return rootCmd
}

func run(cmd *cobra.Command, _ []string) error {
	entities := catalog.All()
	l := slog.With("target", target, "group", crd.GroupVersion.Group, "version", crd.GroupVersion.Version)
	l.InfoContext(cmd.Context(), "Generating CRDs", "count", len(entities))

	if !skipValidation {
		if err := validate(entities); err != nil {
			return fmt.Errorf("invalid entity catalog: %w", err)
		}
	}

	if check {
		if err := render.CheckCrdFiles(entities, target); err != nil {
			return err
		}
		l.InfoContext(cmd.Context(), "CRDs are up to date", "count", len(entities))
		return nil
	}

	files, err := render.WriteCrdFiles(entities, target)
	if err != nil {
		return fmt.Errorf("failed to write CRDs: %w", err)
	}

	combined := files[len(files)-1]
	l.InfoContext(cmd.Context(), "Successfully generated CRDs",
		"count", len(files)-1,
		"install", "kubectl apply -f "+combined,
		"verify", fmt.Sprintf("kubectl get crds | grep %s | wc -l", crd.GroupVersion.Group),
	)
	return nil
}

func validate(entities []catalog.Entity) error {
	errs := []error{catalog.Validate(entities)}
	for _, e := range entities {
		errs = append(errs, schema.CheckRequired(e.Kind+".spec", crd.SpecSchema(e))...)

		data, err := render.Marshal(crd.Build(e))
		if err != nil {
			return fmt.Errorf("error generating CRD content for %s: %w", e.Kind, err)
		}
		parsed, err := openapi.Parse(data)
		if err != nil {
			return fmt.Errorf("error parsing generated CRD for %s: %w", e.Kind, err)
		}
		if err := openapi.Validate(parsed, crd.GroupVersion.Group); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", e.Kind, err))
		}
	}
	return errors.Join(errs...)
}
