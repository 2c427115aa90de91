package render

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hass-crds/crd-gen/internal/catalog"
)

func entities(t *testing.T, names ...string) []catalog.Entity {
	t.Helper()
	var res []catalog.Entity
	for _, n := range names {
		e, ok := catalog.Lookup(n)
		require.True(t, ok, n)
		res = append(res, e)
	}
	return res
}

func documents(combined string) []string {
	parts := strings.Split(combined, "\n"+separator)
	return parts[1:]
}

func TestWriteCrdFiles(t *testing.T) {
	targetDir := t.TempDir()
	all := catalog.All()

	files, err := WriteCrdFiles(all, targetDir)
	require.NoError(t, err)
	require.Len(t, files, len(all)+1)

	for i, e := range all {
		assert.Equal(t, filepath.Join(targetDir, "bases", e.Singular+".yaml"), files[i])
		assert.FileExists(t, files[i])
	}
	assert.Equal(t, filepath.Join(targetDir, "crds.yaml"), files[len(files)-1])

	combined, err := os.ReadFile(filepath.Join(targetDir, "crds.yaml"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(combined), `# Generated CRDs for hass-crds
# API Group: mqtt.home-assistant.io
# Version: v1alpha1
# Total CRDs: 29
#
# Install with: kubectl apply -f crds.yaml
# Verify with: kubectl get crds | grep mqtt.home-assistant.io
---
`))
	assert.Equal(t, len(all), strings.Count(string(combined), "\n"+separator))
	assert.Len(t, documents(string(combined)), len(all))
	assert.False(t, strings.HasSuffix(string(combined), separator))
}

func TestCombinedOrderIsLexicographic(t *testing.T) {
	targetDir := t.TempDir()

	_, err := WriteCrdFiles(entities(t, "mqttdevice", "mqttbutton"), targetDir)
	require.NoError(t, err)

	button, err := os.ReadFile(filepath.Join(targetDir, "bases", "mqttbutton.yaml"))
	require.NoError(t, err)
	device, err := os.ReadFile(filepath.Join(targetDir, "bases", "mqttdevice.yaml"))
	require.NoError(t, err)
	combined, err := os.ReadFile(filepath.Join(targetDir, "crds.yaml"))
	require.NoError(t, err)

	assert.Equal(t, banner(2)+string(button)+separator+string(device), string(combined))
}

func TestIndividualFile(t *testing.T) {
	targetDir := t.TempDir()

	_, err := WriteCrdFiles(entities(t, "mqttsensor"), targetDir)
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(targetDir, "bases", "mqttsensor.yaml"))
	require.NoError(t, err)
	content := string(data)

	assert.True(t, strings.HasPrefix(content, `apiVersion: apiextensions.k8s.io/v1
kind: CustomResourceDefinition
metadata:
  name: mqttsensors.mqtt.home-assistant.io
  annotations:
    controller-gen.kubebuilder.io/version: v0.14.0
  labels:
    app.kubernetes.io/name: hass-crds
    app.kubernetes.io/component: crds
spec:
  group: mqtt.home-assistant.io
  names:
    kind: MQTTSensor
    listKind: MQTTSensorList
    plural: mqttsensors
    singular: mqttsensor
    categories:
      - hass
      - mqtt
  scope: Namespaced
`), content)
	assert.Contains(t, content, "°C")
	assert.NotContains(t, content, "shortNames")
	assert.Contains(t, content, "      subresources:\n        status: {}\n")

	// entity properties come first, in declaration order, followed by the common ones
	stateTopic := strings.Index(content, "                stateTopic:")
	suggested := strings.Index(content, "                suggestedDisplayPrecision:")
	name := strings.Index(content, "                name:")
	rediscover := strings.Index(content, "                rediscoverInterval:")
	assert.Less(t, stateTopic, suggested)
	assert.Less(t, suggested, name)
	assert.Less(t, name, rediscover)
}

func TestIdempotent(t *testing.T) {
	targetDir := t.TempDir()
	all := catalog.All()

	files, err := WriteCrdFiles(all, targetDir)
	require.NoError(t, err)

	first := make(map[string][]byte)
	for _, f := range files {
		data, err := os.ReadFile(f)
		require.NoError(t, err)
		first[f] = data
	}

	_, err = WriteCrdFiles(catalog.All(), targetDir)
	require.NoError(t, err)

	for _, f := range files {
		data, err := os.ReadFile(f)
		require.NoError(t, err)
		assert.Equal(t, string(first[f]), string(data), f)
	}
}

func TestCheckCrdFiles(t *testing.T) {
	targetDir := t.TempDir()
	all := entities(t, "mqttlight", "mqttlock")

	err := CheckCrdFiles(all, targetDir)
	require.ErrorIs(t, err, ErrDrift)

	_, err = WriteCrdFiles(all, targetDir)
	require.NoError(t, err)
	require.NoError(t, CheckCrdFiles(all, targetDir))

	lock := filepath.Join(targetDir, "bases", "mqttlock.yaml")
	require.NoError(t, os.WriteFile(lock, []byte("apiVersion: v1\n"), 0o644))

	err = CheckCrdFiles(all, targetDir)
	require.ErrorIs(t, err, ErrDrift)
	assert.Contains(t, err.Error(), lock)
	assert.Contains(t, err.Error(), "-apiVersion: v1")
	assert.Contains(t, err.Error(), "+apiVersion: apiextensions.k8s.io/v1")
	assert.NotContains(t, err.Error(), "mqttlight.yaml")
}

func TestWriteCrdFilesUnwritable(t *testing.T) {
	targetDir := t.TempDir()
	blocker := filepath.Join(targetDir, "bases")
	require.NoError(t, os.WriteFile(blocker, []byte("file"), 0o644))

	_, err := WriteCrdFiles(entities(t, "mqttbutton"), targetDir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error creating directory")
}
