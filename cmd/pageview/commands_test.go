package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cristianoliveira/pageview/internal/colors"
	"github.com/cristianoliveira/pageview/internal/storage/sqlite"
	"github.com/cristianoliveira/pageview/internal/tui"
)

const docID = "6f1c2a9e-4b7d-4c3a-9f0e-123456789abc"

type fakeStore struct {
	docs      []sqlite.Document
	bodies    map[string][]string
	positions map[string]int
	created   []string
	deleted   []string
	saveErr   error
}

func newFakeStore() *fakeStore {
	bodies := []string{"first page", "second page", "third page", "fourth page", "fifth page"}
	return &fakeStore{
		docs: []sqlite.Document{{
			ID:       docID,
			Title:    "Stored",
			Pages:    len(bodies),
			Position: 3,
		}},
		bodies:    map[string][]string{docID: bodies},
		positions: map[string]int{docID: 3},
	}
}

func (f *fakeStore) CreateDocument(ctx context.Context, title, source string, pages []string) (sqlite.Document, error) {
	f.created = append(f.created, title)
	return sqlite.Document{ID: "aaaabbbbccccdddd", Title: title, Source: source, Pages: len(pages), Position: -1}, nil
}

func (f *fakeStore) ListDocuments(ctx context.Context) ([]sqlite.Document, error) {
	return f.docs, nil
}

func (f *fakeStore) FindDocument(ctx context.Context, ref string) (sqlite.Document, error) {
	for _, d := range f.docs {
		if strings.HasPrefix(d.ID, ref) {
			return d, nil
		}
	}
	return sqlite.Document{}, sqlite.ErrDocumentNotFound
}

func (f *fakeStore) DeleteDocument(ctx context.Context, id string) error {
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeStore) PageCount(ctx context.Context, id string) (int, error) {
	return len(f.bodies[id]), nil
}

func (f *fakeStore) Page(ctx context.Context, id string, index int) (sqlite.Page, error) {
	b := f.bodies[id]
	if index < 0 || index >= len(b) {
		return sqlite.Page{}, sqlite.ErrPageNotFound
	}
	return sqlite.Page{DocumentID: id, Index: index, Body: b[index]}, nil
}

func (f *fakeStore) Position(ctx context.Context, id string) (int, error) {
	return f.positions[id], nil
}

func (f *fakeStore) SavePosition(ctx context.Context, id string, index int) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.positions[id] = index
	return nil
}

func quiet(t *testing.T) {
	t.Helper()
	colors.SetOutput(nil, nil)
	t.Cleanup(colors.ResetOutput)
}

func execute(t *testing.T, c *cobra.Command, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	c.SetOut(&out)
	c.SetErr(&out)
	if args == nil {
		args = []string{}
	}
	c.SetArgs(args)
	err := c.ExecuteContext(context.Background())
	return out.String(), err
}

// capture returns a runner that keeps the model and optionally drives it.
func capture(drive func(m *tui.Model)) (programRunner, func() *tui.Model) {
	var got *tui.Model
	return func(m tea.Model) error {
			got = m.(*tui.Model)
			if drive != nil {
				drive(got)
			}
			return nil
		}, func() *tui.Model {
			return got
		}
}

func TestReadStoredDocumentResumes(t *testing.T) {
	quiet(t)
	store := newFakeStore()
	runner, model := capture(func(m *tui.Model) {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("G")})
	})

	_, err := execute(t, NewReadCmd(store, runner), "6f1c")
	require.NoError(t, err)

	require.NotNil(t, model())
	assert.Equal(t, 5, model().Controller().PageCount())
	assert.Equal(t, 4, model().Controller().Index())
	assert.Equal(t, 4, store.positions[docID])
}

func TestReadPageFlagOverridesPosition(t *testing.T) {
	quiet(t)
	store := newFakeStore()
	runner, model := capture(nil)

	_, err := execute(t, NewReadCmd(store, runner), docID, "--page", "2")
	require.NoError(t, err)

	assert.Equal(t, 1, model().Controller().Index())
	assert.Equal(t, 1, store.positions[docID])
}

func TestReadReportsSaveFailuresInStatus(t *testing.T) {
	quiet(t)
	store := newFakeStore()
	store.saveErr = errors.New("disk full")
	runner, model := capture(func(m *tui.Model) {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("g")})
	})

	_, err := execute(t, NewReadCmd(store, runner), docID)
	require.NoError(t, err)

	msg, ok := model().Status().Current()
	require.True(t, ok)
	assert.Contains(t, msg.Text, "disk full")
}

func TestReadFile(t *testing.T) {
	quiet(t)
	path := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("one\n\ftwo\n\fthree\n"), 0o600))
	runner, model := capture(nil)

	_, err := execute(t, NewReadCmd(newFakeStore(), runner), path, "--evict")
	require.NoError(t, err)

	ctrl := model().Controller()
	assert.Equal(t, 3, ctrl.PageCount())
	assert.Equal(t, 0, ctrl.Index())
	assert.True(t, ctrl.EvictWhenDistant())
}

func TestReadErrors(t *testing.T) {
	quiet(t)
	runnerErr := errors.New("no tty")
	tests := []struct {
		name   string
		args   []string
		runner programRunner
		want   error
		msg    string
	}{
		{name: "unknown document", args: []string{"ffff"}, want: sqlite.ErrDocumentNotFound},
		{name: "negative page", args: []string{docID, "--page=-1"}, msg: "page must be positive"},
		{
			name:   "program failure",
			args:   []string{docID},
			runner: func(tea.Model) error { return runnerErr },
			want:   runnerErr,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := tt.runner
			if runner == nil {
				runner, _ = capture(nil)
			}
			_, err := execute(t, NewReadCmd(newFakeStore(), runner), tt.args...)
			require.Error(t, err)
			if tt.want != nil {
				assert.ErrorIs(t, err, tt.want)
			}
			if tt.msg != "" {
				assert.Contains(t, err.Error(), tt.msg)
			}
		})
	}
}

func TestImportCommand(t *testing.T) {
	quiet(t)
	path := filepath.Join(t.TempDir(), "book.txt")
	require.NoError(t, os.WriteFile(path, []byte(strings.Repeat("word ", 200)), 0o600))
	store := newFakeStore()

	_, err := execute(t, NewImportCmd(store), path, "--title", "My Book", "--width", "40", "--height", "5")
	require.NoError(t, err)
	assert.Equal(t, []string{"My Book"}, store.created)

	_, err = execute(t, NewImportCmd(store))
	assert.Error(t, err)
}

func TestListCommand(t *testing.T) {
	out, err := execute(t, NewListCmd(newFakeStore()))
	require.NoError(t, err)
	assert.Contains(t, out, "Stored")
	assert.Contains(t, out, "4/5")
}

func TestDeleteCommand(t *testing.T) {
	quiet(t)
	store := newFakeStore()

	_, err := execute(t, NewDeleteCmd(store), "6f1c2a")
	require.NoError(t, err)
	assert.Equal(t, []string{docID}, store.deleted)
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, NewVersionCmd(buildVersion{}))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "pageview version "))
}

func TestConstructorsRejectNilClients(t *testing.T) {
	assert.Panics(t, func() { NewReadCmd(nil, runProgram) })
	assert.Panics(t, func() { NewReadCmd(newFakeStore(), nil) })
	assert.Panics(t, func() { NewImportCmd(nil) })
	assert.Panics(t, func() { NewListCmd(nil) })
	assert.Panics(t, func() { NewDeleteCmd(nil) })
	assert.Panics(t, func() { NewVersionCmd(nil) })
}

type recordingHandler struct {
	errors []string
}

func (h *recordingHandler) Error(msg string)   { h.errors = append(h.errors, msg) }
func (h *recordingHandler) Warning(msg string) {}
func (h *recordingHandler) Info(msg string)    {}
func (h *recordingHandler) Success(msg string) {}

func TestRunExitCodes(t *testing.T) {
	h := &recordingHandler{}
	assert.Equal(t, 0, run(func() error { return nil }, h))
	assert.Empty(t, h.errors)

	assert.Equal(t, 1, run(func() error { return fmt.Errorf("read: %w", errors.New("boom")) }, h))
	assert.Equal(t, []string{"read: boom"}, h.errors)
}
