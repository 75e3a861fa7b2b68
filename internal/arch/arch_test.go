// ./internal/arch/arch_test.go
package arch

import (
	"bytes"
	"encoding/json"
	"io"
	"os/exec"
	"strings"
	"testing"
)

type pkg struct {
	ImportPath string
	Imports    []string
	Standard   bool
}

func TestImportBoundaries(t *testing.T) {
	cmd := exec.Command("go", "list", "-json", "./...")
	var out bytes.Buffer
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		t.Fatalf("go list: %v", err)
	}
	dec := json.NewDecoder(&out)

	bans := map[string][]string{
		"biofx/internal/input": {
			"biofx/internal/report", "biofx/internal/app",
			"biofx/internal/cli", "biofx/internal/appshell", "biofx/cmd/",
		},
		"biofx/internal/report": {
			"biofx/internal/app", "biofx/internal/cli",
			"biofx/internal/appshell", "biofx/cmd/",
		},
		"biofx/internal/app": {
			"biofx/internal/cli", "biofx/internal/appshell", "biofx/cmd/",
		},
		"biofx/internal/config": {
			"biofx/internal/app", "biofx/internal/cli", "biofx/cmd/",
		},
		"biofx/pkg/api": {
			"biofx/internal/",
		},
	}

	var violations []string
	for {
		var p pkg
		if err := dec.Decode(&p); err == io.EOF {
			break
		} else if err != nil {
			t.Fatalf("decode: %v", err)
		}
		if !strings.HasPrefix(p.ImportPath, "biofx/") {
			continue
		}
		imp := p.ImportPath
		for prefix, forbidden := range bans {
			if !strings.HasPrefix(imp, prefix) {
				continue
			}
			for _, dep := range p.Imports {
				if !strings.HasPrefix(dep, "biofx/") {
					continue
				}
				for _, ban := range forbidden {
					if strings.HasPrefix(dep, ban) {
						violations = append(violations, imp+" → "+dep)
					}
				}
			}
		}
	}

	if len(violations) > 0 {
		t.Fatalf("import boundary violations:\n  %s", strings.Join(violations, "\n  "))
	}
}
