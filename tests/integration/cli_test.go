//go:build integration

package integration

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

const catalogFixture = `brand: CrownLabs
intervals:
  cpu: {min: 1, max: 4}
  ram: {min: 4, max: 16}
  disk: {min: 1, max: 32}
images:
  - name: Ubuntu
    runtimeKinds: [Container, VM]
  - name: Windows
    runtimeKinds: [Container]
templates:
  - id: "0_1"
    name: Ubuntu VM
    image: Ubuntu
    runtimeKind: VM
    gui: true
    cpu: 2
    ram: 8
    disk: 10
    instances:
      - {id: 1, name: Ubuntu VM, ip: 192.168.0.1, running: true}
      - {id: 2, name: Ubuntu VM, ip: 192.168.0.2, running: false}
  - id: "0_4"
    name: Console (Linux)
    image: Ubuntu
    runtimeKind: Container
    cpu: 1
    ram: 4
    disk: 1
    instances: []
`

// buildBinary compiles the CLI into a temp dir and returns its path
func buildBinary(t *testing.T) string {
	t.Helper()

	binary := filepath.Join(t.TempDir(), "workspaces-test")
	buildCmd := exec.Command("go", "build", "-o", binary, ".")
	buildCmd.Dir = getProjectRoot(t)
	if output, err := buildCmd.CombinedOutput(); err != nil {
		t.Fatalf("failed to build: %v\n%s", err, output)
	}
	return binary
}

func writeCatalog(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	if err := os.WriteFile(path, []byte(catalogFixture), 0644); err != nil {
		t.Fatalf("failed to write catalog: %v", err)
	}
	return path
}

func run(t *testing.T, binary string, args ...string) (string, error) {
	t.Helper()
	cmd := exec.Command(binary, args...)
	cmd.Env = append(os.Environ(), "WORKSPACES_ROLE=", "WORKSPACES_CATALOG=")
	output, err := cmd.CombinedOutput()
	return string(output), err
}

// TestTemplatesList tests the non-interactive table output per role
func TestTemplatesList(t *testing.T) {
	binary := buildBinary(t)
	catalog := writeCatalog(t)

	output, err := run(t, binary, "templates", "list", "--catalog", catalog, "--role", "manager")
	if err != nil {
		t.Fatalf("templates list failed: %v\n%s", err, output)
	}
	for _, want := range []string{"Ubuntu VM", "Console (Linux)", "1/2 running", "ACTIONS"} {
		if !strings.Contains(output, want) {
			t.Errorf("expected output to contain %q, got: %s", want, output)
		}
	}

	output, err = run(t, binary, "templates", "list", "--catalog", catalog, "--expand", "-o", "json")
	if err != nil {
		t.Fatalf("templates list failed: %v\n%s", err, output)
	}
	if strings.Contains(output, `"actions"`) {
		t.Errorf("users should get no actions, got: %s", output)
	}
	if !strings.Contains(output, "192.168.0.2") {
		t.Errorf("expected expanded instances, got: %s", output)
	}
}

// TestCreateNonInteractive tests creating a template from inline params
func TestCreateNonInteractive(t *testing.T) {
	binary := buildBinary(t)
	catalog := writeCatalog(t)
	outDir := t.TempDir()

	output, err := run(t, binary, "create", "--non-interactive",
		"--catalog", catalog,
		"-p", "name=Windows Desktop",
		"-p", "image=Windows",
		"-p", "ram=64",
		"-d", outDir,
	)
	if err != nil {
		t.Fatalf("create failed: %v\n%s", err, output)
	}

	content, err := os.ReadFile(filepath.Join(outDir, "windows-desktop-template.yaml"))
	if err != nil {
		t.Fatalf("expected manifest to be written: %v\n%s", err, output)
	}
	for _, want := range []string{"kind: Template", "runtimeKind: Container", "ram: 16"} {
		if !strings.Contains(string(content), want) {
			t.Errorf("expected manifest to contain %q, got:\n%s", want, content)
		}
	}
}

// TestCreateDryRun tests that dry-run writes nothing
func TestCreateDryRun(t *testing.T) {
	binary := buildBinary(t)
	catalog := writeCatalog(t)
	outDir := t.TempDir()

	output, err := run(t, binary, "create", "--non-interactive", "--dry-run",
		"--catalog", catalog,
		"-p", "name=Scratch",
		"-d", outDir,
	)
	if err != nil {
		t.Fatalf("create failed: %v\n%s", err, output)
	}
	if !strings.Contains(output, "DRY RUN") {
		t.Errorf("expected dry-run notice, got: %s", output)
	}

	files, _ := os.ReadDir(outDir)
	if len(files) != 0 {
		t.Errorf("dry run should not create files, found %d", len(files))
	}
}

// TestCreateRejectsMissingName tests that an unnamed template is refused
func TestCreateRejectsMissingName(t *testing.T) {
	binary := buildBinary(t)
	catalog := writeCatalog(t)

	output, err := run(t, binary, "create", "--non-interactive", "--catalog", catalog, "-p", "cpu=2", "-d", t.TempDir())
	if err == nil {
		t.Fatalf("expected create to fail, got:\n%s", output)
	}
	if !strings.Contains(output, "name") {
		t.Errorf("expected the missing name to be reported, got: %s", output)
	}
}

// TestEditRequiresManager tests the role gate of the edit command
func TestEditRequiresManager(t *testing.T) {
	binary := buildBinary(t)
	catalog := writeCatalog(t)
	outDir := t.TempDir()

	output, err := run(t, binary, "edit", "0_1", "--non-interactive", "--catalog", catalog, "-p", "ram=12", "-d", outDir)
	if err == nil {
		t.Fatalf("expected edit to be refused for users, got:\n%s", output)
	}

	output, err = run(t, binary, "edit", "0_1", "--non-interactive", "--catalog", catalog, "--role", "manager",
		"-p", "ram=12", "-d", outDir, "--filename-pattern", "{{.id}}.yaml")
	if err != nil {
		t.Fatalf("edit failed: %v\n%s", err, output)
	}
	content, err := os.ReadFile(filepath.Join(outDir, "0_1.yaml"))
	if err != nil {
		t.Fatalf("expected manifest to be written: %v", err)
	}
	if !strings.Contains(string(content), "ram: 12") || !strings.Contains(string(content), "0_1") {
		t.Errorf("unexpected manifest:\n%s", content)
	}
}

// TestHeader tests the header decision output
func TestHeader(t *testing.T) {
	binary := buildBinary(t)

	output, err := run(t, binary, "header", "--logged-in", "--can-toggle-admin", "--admin-view-hidden", "-o", "json")
	if err != nil {
		t.Fatalf("header failed: %v\n%s", err, output)
	}
	if !strings.Contains(output, `"display": "logout"`) || !strings.Contains(output, "Professor Area") {
		t.Errorf("unexpected header output: %s", output)
	}
}

func getProjectRoot(t *testing.T) string {
	t.Helper()

	// Navigate up to project root (from tests/integration)
	projectRoot := filepath.Join("..", "..")

	if _, err := os.Stat(filepath.Join(projectRoot, "go.mod")); os.IsNotExist(err) {
		t.Fatalf("go.mod not found in %s", projectRoot)
	}

	return projectRoot
}
