// internal/integration/integration_test.go
package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"biofx/internal/cli"
	"biofx/internal/cmdutil"
	"biofx/pkg/api"
)

func write(t *testing.T, dir, name, data string) string {
	t.Helper()
	fn := filepath.Join(dir, name)
	if err := os.WriteFile(fn, []byte(data), 0o644); err != nil {
		t.Fatalf("write %s: %v", fn, err)
	}
	return fn
}

func execute(ctx context.Context, args ...string) (string, string, error) {
	root := cli.NewRootCmd()
	var out, errBuf bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errBuf)
	root.SetArgs(args)
	err := root.ExecuteContext(ctx)
	return out.String(), errBuf.String(), err
}

func TestLengthsEndToEnd(t *testing.T) {
	dir := t.TempDir()
	a := write(t, dir, "input1.txt", strings.Repeat("A", 967)+"\n"+strings.Repeat("C", 400)+"\n")
	b := write(t, dir, "input2.txt", strings.Repeat("G", 18)+"\n"+strings.Repeat("T", 500)+"\n")
	c := write(t, dir, "input3.txt", strings.Repeat("A", 462)+"\n")
	out := filepath.Join(dir, "out")

	stdout, stderr, err := execute(context.Background(), "lengths", "--format", "json", "-o", out, a, b, c)
	if err != nil {
		t.Fatalf("run: %v (stderr=%s)", err, stderr)
	}
	if !strings.Contains(stdout, "5 sequences in 3 files") {
		t.Fatalf("unexpected summary %q", stdout)
	}

	combined, err := os.ReadFile(filepath.Join(out, "combined_data.txt"))
	if err != nil {
		t.Fatal(err)
	}
	want := "Maximum Length: 967\nMinimum Length: 18\nAverage Length: 469.4\n"
	if string(combined) != want {
		t.Fatalf("combined_data.txt = %q, want %q", combined, want)
	}

	raw, err := os.ReadFile(filepath.Join(out, "combined_data.json"))
	if err != nil {
		t.Fatal(err)
	}
	var rep api.LengthReportV1
	if err := json.Unmarshal(raw, &rep); err != nil {
		t.Fatalf("decode json report: %v", err)
	}
	if len(rep.Files) != 3 || rep.Combined.Max == nil || *rep.Combined.Max != 967 {
		t.Fatalf("unexpected json report: %+v", rep)
	}
	if rep.RunID == "" {
		t.Fatalf("json report missing run id")
	}
}

func TestGCEndToEnd(t *testing.T) {
	dir := t.TempDir()
	fa := write(t, dir, "gc.fa", ">low\nAATT\n>high\nGGCA\n>mid\nACGT\n")

	stdout, _, err := execute(context.Background(), "gc", fa)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if stdout != "high 75.000000\n" {
		t.Fatalf("stdout = %q", stdout)
	}
}

func TestFastaAndHammingEndToEnd(t *testing.T) {
	dir := t.TempDir()
	fa := write(t, dir, "seqs.fa", ">a\nACGT\n>b\nACGA\n")
	seqs := write(t, dir, "seqs.txt", "ACGT\nACGA\nTTTT\n")

	stdout, _, err := execute(context.Background(), "fasta", fa)
	if err != nil {
		t.Fatalf("fasta: %v", err)
	}
	if !strings.Contains(stdout, "a\tACGT\n") || !strings.Contains(stdout, "b\tACGA\n") {
		t.Fatalf("fasta stdout = %q", stdout)
	}

	stdout, _, err = execute(context.Background(), "hamming", seqs)
	if err != nil {
		t.Fatalf("hamming: %v", err)
	}
	if !strings.HasSuffix(stdout, "[[0 1 3]\n [0 0 4]\n [0 0 0]]\n") {
		t.Fatalf("hamming stdout = %q", stdout)
	}

	stdout, _, err = execute(context.Background(), "hamming", "--pair", "GAGCCTACTAACGGGAT", "CATCGTAATGACGGCCT")
	if err != nil {
		t.Fatalf("hamming --pair: %v", err)
	}
	if stdout != "7\n" {
		t.Fatalf("pair stdout = %q", stdout)
	}
}

func TestMissingInputIsUsageError(t *testing.T) {
	_, _, err := execute(context.Background(), "lengths", filepath.Join(t.TempDir(), "nope.txt"))
	if got := cmdutil.Code(err); got != cmdutil.ExitUsage {
		t.Fatalf("exit code = %d (%v), want %d", got, err, cmdutil.ExitUsage)
	}
}

func TestCanceledRunExits130(t *testing.T) {
	dir := t.TempDir()
	in := write(t, dir, "input.txt", "ACGT\n")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := execute(ctx, "lengths", "-o", filepath.Join(dir, "out"), in)
	if got := cmdutil.Code(err); got != cmdutil.ExitCanceled {
		t.Fatalf("exit code = %d (%v), want %d", got, err, cmdutil.ExitCanceled)
	}
}
