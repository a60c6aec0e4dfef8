package target

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeWindow struct {
	title     string
	titleErr  error
	path      string
	pathErr   error
	pathCalls int
}

func (w *fakeWindow) Title() (string, error) {
	return w.title, w.titleErr
}

func (w *fakeWindow) ExecutablePath() (string, error) {
	w.pathCalls++
	return w.path, w.pathErr
}

func TestMatches_Title(t *testing.T) {
	notepad := &fakeWindow{title: "Notepad"}

	assert.True(t, Matches(notepad, Criteria{TitleContains: []string{"note"}}))
	assert.True(t, Matches(notepad, Criteria{TitleContains: []string{"NOTE"}}))
	assert.False(t, Matches(notepad, Criteria{TitleContains: []string{"calc"}}))
	assert.True(t, Matches(notepad, Criteria{TitleContains: []string{"calc", "pad"}}))
}

func TestMatches_EmptyCriteriaMatchesEverything(t *testing.T) {
	w := &fakeWindow{titleErr: errors.New("gone"), pathErr: errors.New("denied")}
	assert.True(t, Matches(w, Criteria{}))
	assert.Equal(t, 0, w.pathCalls)
}

func TestMatches_TitleFailureRejects(t *testing.T) {
	w := &fakeWindow{titleErr: errors.New("invalid window handle"), path: `C:\app.exe`}
	assert.False(t, Matches(w, Criteria{TitleContains: []string{""}}))
}

func TestMatches_Path(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		suffixes []string
		want     bool
	}{
		{"single suffix", `C:\Windows\System32\notepad.exe`, []string{"notepad.exe"}, true},
		{"case insensitive", `C:\Windows\System32\NOTEPAD.EXE`, []string{"\\notepad.exe"}, true},
		{"any of several", `C:\Games\game.exe`, []string{"notepad.exe", "game.exe", "calc.exe"}, true},
		{"none match", `C:\Games\game.exe`, []string{"notepad.exe", "calc.exe"}, false},
		{"suffix not substring", `C:\game.exe.bak`, []string{"game.exe"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := &fakeWindow{path: tt.path}
			assert.Equal(t, tt.want, Matches(w, Criteria{PathEndsWith: tt.suffixes}))
		})
	}
}

func TestMatches_PathFailureRejects(t *testing.T) {
	w := &fakeWindow{title: "x", pathErr: errors.New("access denied")}
	assert.False(t, Matches(w, Criteria{PathEndsWith: []string{".exe"}}))
}

func TestMatches_PathSkippedWhenTitleFails(t *testing.T) {
	w := &fakeWindow{title: "Calculator", path: `C:\notepad.exe`}
	c := Criteria{TitleContains: []string{"notepad"}, PathEndsWith: []string{"notepad.exe"}}

	assert.False(t, Matches(w, c))
	assert.Equal(t, 0, w.pathCalls, "path must not be resolved after a title rejection")
}

func TestMatches_BothAxes(t *testing.T) {
	w := &fakeWindow{title: "Untitled - Notepad", path: `C:\Windows\notepad.exe`}
	c := Criteria{TitleContains: []string{"notepad"}, PathEndsWith: []string{"notepad.exe"}}

	assert.True(t, Matches(w, c))
	assert.Equal(t, 1, w.pathCalls)
}

func TestAll_ShortCircuits(t *testing.T) {
	calls := 0
	counting := func(result bool) Predicate {
		return func(Window) bool {
			calls++
			return result
		}
	}

	p := All(counting(true), counting(false), counting(true))
	assert.False(t, p(&fakeWindow{}))
	assert.Equal(t, 2, calls)

	calls = 0
	assert.True(t, All()(&fakeWindow{}))
	assert.Equal(t, 0, calls)
}

func TestCriteria_IsEmpty(t *testing.T) {
	assert.True(t, Criteria{}.IsEmpty())
	assert.False(t, Criteria{PathEndsWith: []string{"a"}}.IsEmpty())
}
