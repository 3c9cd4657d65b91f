package registry

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-frogger/internal/core"
)

type stubGame struct {
	id, title string
}

func (g *stubGame) ID() string { return g.id }
func (g *stubGame) Title() string { return g.title }
func (g *stubGame) Reset(core.RuntimeConfig) {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen) {}
func (g *stubGame) State() core.GameState { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("stub_b", "second stub", func() Game { return &stubGame{id: "stub_b", title: "Stub B"} })
	Register("stub_a", "first stub", func() Game { return &stubGame{id: "stub_a", title: "Stub A"} })

	if !Exists("stub_a") || !Exists("stub_b") {
		t.Fatal("registered games should exist")
	}
	if Exists("stub_missing") {
		t.Error("unregistered game should not exist")
	}

	g, err := Create("stub_a")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.Title() != "Stub A" {
		t.Errorf("Title() = %q, expected %q", g.Title(), "Stub A")
	}

	info, ok := Info("stub_b")
	if !ok || info.Description != "second stub" || info.Title != "Stub B" {
		t.Errorf("Info(stub_b) = %+v, %v", info, ok)
	}

	// List is sorted by ID
	var ids []string
	for _, gi := range List() {
		if strings.HasPrefix(gi.ID, "stub_") {
			ids = append(ids, gi.ID)
		}
	}
	if len(ids) != 2 || ids[0] != "stub_a" || ids[1] != "stub_b" {
		t.Errorf("List() stub ids = %v, expected [stub_a stub_b]", ids)
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("stub_nope"); err == nil {
		t.Error("Create() of unknown game should fail")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("stub_dup", "", func() Game { return &stubGame{id: "stub_dup"} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("stub_dup", "", func() Game { return &stubGame{id: "stub_dup"} })
}
