package cmd

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/dave-shawley/massive-octo-dangerzone/internal/config"
	"github.com/dave-shawley/massive-octo-dangerzone/internal/graphtest"
)

// runCommand executes one CLI invocation against a scratch store and
// the given graph URL, feeding stdin and capturing combined output.
func runCommand(t *testing.T, store, graphURL, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Setenv(config.EnvStore, "")
	t.Setenv(config.EnvGraphURL, "")
	t.Setenv(config.EnvDebug, "")

	var out bytes.Buffer
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append(args, "--store", store, "--graph-url", graphURL))
	err := rootCmd.Execute()
	return out.String(), err
}

// recordedID pulls the identifier out of a "recorded person <id>" or
// "recorded source <id>" line.
func recordedID(t *testing.T, output, noun string) string {
	t.Helper()
	for _, line := range strings.Split(output, "\n") {
		if rest, ok := strings.CutPrefix(line, "recorded "+noun+" "); ok {
			return strings.TrimSpace(rest)
		}
	}
	t.Fatalf("no 'recorded %s' line in output:\n%s", noun, output)
	return ""
}

func TestAddPersonCommand(t *testing.T) {
	srv := graphtest.New()
	defer srv.Close()
	store := filepath.Join(t.TempDir(), uuid.NewString())

	stdin := "Ada\n\nLovelace\nfemale\n1815-12-10\n"
	out, err := runCommand(t, store, srv.URL, stdin, "add-person")
	if err != nil {
		t.Fatalf("add-person failed: %v\noutput:\n%s", err, out)
	}

	id := recordedID(t, out, "person")
	if len(id) != 40 {
		t.Errorf("expected 40-character identifier, got %q", id)
	}

	nodes := srv.Nodes()
	if len(nodes) != 1 {
		t.Fatalf("expected 1 graph node, got %d", len(nodes))
	}
	if nodes[0].Data["first_name"] != "Ada" {
		t.Errorf("first_name = %v, want Ada", nodes[0].Data["first_name"])
	}
	if got := nodes[0].Labels; len(got) != 1 || got[0] != "Person" {
		t.Errorf("labels = %v, want [Person]", got)
	}
}

func TestAddPersonCommand_RepromptsOnBadGender(t *testing.T) {
	srv := graphtest.New()
	defer srv.Close()
	store := filepath.Join(t.TempDir(), uuid.NewString())

	// "robot" is rejected, then "f" is accepted.
	stdin := "Ada\n\nLovelace\nrobot\nf\n\n"
	out, err := runCommand(t, store, srv.URL, stdin, "add-person")
	if err != nil {
		t.Fatalf("add-person failed: %v\noutput:\n%s", err, out)
	}
	if len(srv.Nodes()) != 1 {
		t.Fatalf("expected 1 graph node, got %d", len(srv.Nodes()))
	}
}

func TestAddSourceCommand(t *testing.T) {
	srv := graphtest.New()
	defer srv.Close()
	store := filepath.Join(t.TempDir(), uuid.NewString())

	stdin := "1901 Census of England\ncensus\nPublic Record Office\n\n"
	out, err := runCommand(t, store, srv.URL, stdin, "add-source")
	if err != nil {
		t.Fatalf("add-source failed: %v\noutput:\n%s", err, out)
	}

	id := recordedID(t, out, "source")
	nodes := srv.Nodes()
	if len(nodes) != 1 {
		t.Fatalf("expected 1 graph node, got %d", len(nodes))
	}
	if nodes[0].Data["externalId"] != id {
		t.Errorf("node externalId = %v, want %s", nodes[0].Data["externalId"], id)
	}
	if got := nodes[0].Labels; len(got) != 1 || got[0] != "Source" {
		t.Errorf("labels = %v, want [Source]", got)
	}
}

func TestRelateCommand(t *testing.T) {
	srv := graphtest.New()
	defer srv.Close()
	store := filepath.Join(t.TempDir(), uuid.NewString())

	out, err := runCommand(t, store, srv.URL,
		"Ada\n\nLovelace\nfemale\n1815-12-10\n", "add-person")
	if err != nil {
		t.Fatalf("first add-person failed: %v\noutput:\n%s", err, out)
	}
	daughter := recordedID(t, out, "person")

	out, err = runCommand(t, store, srv.URL,
		"Anne\nIsabella\nByron\nfemale\n\n", "add-person")
	if err != nil {
		t.Fatalf("second add-person failed: %v\noutput:\n%s", err, out)
	}
	mother := recordedID(t, out, "person")

	out, err = runCommand(t, store, srv.URL, "",
		"relate", daughter, "d/o", mother)
	if err != nil {
		t.Fatalf("relate failed: %v\noutput:\n%s", err, out)
	}
	if !strings.Contains(out, "recorded "+daughter+" daughter of "+mother) {
		t.Errorf("unexpected relate output:\n%s", out)
	}

	rels := srv.Relationships()
	if len(rels) != 1 {
		t.Fatalf("expected 1 relationship, got %d", len(rels))
	}
	if rels[0].Type != "daughter" {
		t.Errorf("relationship type = %q, want daughter", rels[0].Type)
	}
}

func TestListPeopleCommand(t *testing.T) {
	srv := graphtest.New()
	defer srv.Close()
	store := filepath.Join(t.TempDir(), uuid.NewString())

	out, err := runCommand(t, store, srv.URL,
		"Ada\n\nLovelace\nfemale\n1815-12-10\n", "add-person")
	if err != nil {
		t.Fatalf("add-person failed: %v\noutput:\n%s", err, out)
	}
	id := recordedID(t, out, "person")

	out, err = runCommand(t, store, srv.URL, "", "list-people")
	if err != nil {
		t.Fatalf("list-people failed: %v\noutput:\n%s", err, out)
	}
	if !strings.Contains(out, id) || !strings.Contains(out, "Lovelace") {
		t.Errorf("listing should show the person, got:\n%s", out)
	}
}

func TestRelateCommand_RejectsUnknownRelation(t *testing.T) {
	store := filepath.Join(t.TempDir(), uuid.NewString())

	// Validation happens before any store is touched.
	_, err := runCommand(t, store, "http://localhost:0", "",
		"relate", "aaaa", "cousin", "bbbb")
	if err == nil {
		t.Fatal("expected an error for an unknown relation")
	}
	if !strings.Contains(err.Error(), "cousin") {
		t.Errorf("error should name the bad relation, got: %v", err)
	}
}

func TestRelateCommand_UnknownPerson(t *testing.T) {
	srv := graphtest.New()
	defer srv.Close()
	store := filepath.Join(t.TempDir(), uuid.NewString())

	_, err := runCommand(t, store, srv.URL, "",
		"relate", "deadbeef", "s/o", "cafebabe")
	if err == nil {
		t.Fatal("expected an error for an unknown person")
	}
	if !strings.Contains(err.Error(), "deadbeef") {
		t.Errorf("error should name the missing person, got: %v", err)
	}
}
