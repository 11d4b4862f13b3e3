package main

import (
	"errors"
	"testing"

	"memento/internal/api"
	"memento/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
)

type recordingProgram struct {
	runs   int
	runErr error
}

func (p *recordingProgram) Run() (tea.Model, error) {
	p.runs++
	return nil, p.runErr
}

func testAppConfig() ui.Config {
	return ui.Config{Client: api.NewMockClient(), Store: nil}
}

func TestRunProgramRunsBuiltApp(t *testing.T) {
	prog := &recordingProgram{}
	var gotCfg ui.Config
	var builtApp *ui.App

	err := runProgram(testAppConfig(), func(cfg ui.Config) *ui.App {
		gotCfg = cfg
		builtApp = ui.NewApp(cfg)
		return builtApp
	}, func(app *ui.App) programRunner {
		if app != builtApp {
			t.Fatal("factory received a different app than the builder produced")
		}
		return prog
	})
	if err != nil {
		t.Fatalf("runProgram returned error: %v", err)
	}
	if prog.runs != 1 {
		t.Fatalf("expected program run once, got %d", prog.runs)
	}
	if gotCfg.Client == nil {
		t.Fatal("expected client passed through config")
	}
}

func TestRunProgramWrapsRunError(t *testing.T) {
	prog := &recordingProgram{runErr: errors.New("terminal unavailable")}

	err := runProgram(testAppConfig(), ui.NewApp, func(*ui.App) programRunner {
		return prog
	})
	if err == nil {
		t.Fatal("expected error from program run")
	}
	if !errors.Is(err, prog.runErr) {
		t.Fatalf("expected wrapped run error, got %v", err)
	}
}

func TestRunProgramNilFactory(t *testing.T) {
	if err := runProgram(testAppConfig(), ui.NewApp, nil); err == nil {
		t.Fatal("expected error for nil factory")
	}
}

func TestRunProgramNilBuilder(t *testing.T) {
	if err := runProgram(testAppConfig(), nil, func(*ui.App) programRunner {
		t.Fatal("factory should not be called")
		return nil
	}); err == nil {
		t.Fatal("expected error for nil builder")
	}
}

func TestRunProgramNilProgram(t *testing.T) {
	if err := runProgram(testAppConfig(), ui.NewApp, func(*ui.App) programRunner {
		return nil
	}); err == nil {
		t.Fatal("expected error for nil program")
	}
}
