package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hass-crds/crd-gen/internal/catalog"
)

func TestGenerateHassCrdsE2E(t *testing.T) {
	tempDir := t.TempDir()

	testCases := []struct {
		name              string
		args              []string
		prepare           func(t *testing.T, targetDir string)
		wantErrMsg        string
		expectedFiles     []string
		fileContentChecks map[string][]string
	}{
		{
			name: "generate",
			expectedFiles: []string{
				"crds.yaml",
				"bases/mqttdevice.yaml",
				"bases/mqttbutton.yaml",
				"bases/mqttalarmcontrolpanel.yaml",
				"bases/mqttevent.yaml",
			},
			fileContentChecks: map[string][]string{
				"crds.yaml": {
					"# Total CRDs: 29",
					"name: mqttbuttons.mqtt.home-assistant.io",
				},
				"bases/mqttbutton.yaml": {
					"name: mqttbuttons.mqtt.home-assistant.io",
					"- btn",
					"- commandTopic",
					"rediscoverInterval:",
				},
				"bases/mqttclimate.yaml": {
					"- hvac",
				},
			},
		},
		{
			name: "skip_validation",
			args: []string{"--skip-validation"},
			expectedFiles: []string{
				"crds.yaml",
				"bases/mqttswitch.yaml",
			},
		},
		{
			name:       "check_without_files",
			args:       []string{"--check"},
			wantErrMsg: "generated CRDs are not up to date",
		},
		{
			name: "check_up_to_date",
			args: []string{"--check"},
			prepare: func(t *testing.T, targetDir string) {
				t.Helper()
				rootCmd := newRootCmd()
				rootCmd.SetArgs([]string{"--target", targetDir})
				require.NoError(t, rootCmd.Execute())
			},
			expectedFiles: []string{"crds.yaml"},
		},
		{
			name: "target_is_a_file",
			prepare: func(t *testing.T, targetDir string) {
				t.Helper()
				require.NoError(t, os.WriteFile(filepath.Join(targetDir, "bases"), []byte("x"), 0o644))
			},
			wantErrMsg: "failed to write CRDs",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			targetDir := filepath.Join(tempDir, tc.name)
			require.NoError(t, os.Mkdir(targetDir, 0o755))

			if tc.prepare != nil {
				tc.prepare(t, targetDir)
			}

			target = ""
			check = false
			skipValidation = false

			rootCmd := newRootCmd()
			b := new(bytes.Buffer)
			rootCmd.SetOut(b)
			rootCmd.SetErr(b)
			rootCmd.SetArgs(append(tc.args, "--target", targetDir))

			err := rootCmd.Execute()

			if tc.wantErrMsg != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.wantErrMsg)
				return
			}
			require.NoError(t, err)

			for _, file := range tc.expectedFiles {
				assert.FileExists(t, filepath.Join(targetDir, file))
			}
			for file, contents := range tc.fileContentChecks {
				data, err := os.ReadFile(filepath.Join(targetDir, file))
				require.NoError(t, err)
				for _, content := range contents {
					assert.Contains(t, string(data), content)
				}
			}
		})
	}
}

func TestValidateCatalog(t *testing.T) {
	require.NoError(t, validate(catalog.All()))
}
