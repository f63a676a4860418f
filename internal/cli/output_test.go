package cli

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/dundun/dundun/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestIsTerminal(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "out")
	if err != nil {
		t.Skip("cannot create temp file")
	}
	defer f.Close()

	assert.False(t, IsTerminal(f), "temp file should not be a terminal")

	var buf bytes.Buffer
	assert.False(t, IsTerminal(&buf), "bytes.Buffer should not be a terminal")
}

func TestColorFunctions(t *testing.T) {
	defer SetColorEnabled(false)

	SetColorEnabled(true)
	assert.True(t, ColorEnabled())
	assert.Equal(t, "\033[32mok\033[0m", Green("ok"))
	assert.Equal(t, "\033[31mok\033[0m", Red("ok"))
	assert.Equal(t, "\033[33mok\033[0m", Yellow("ok"))
	assert.Equal(t, "\033[90mok\033[0m", Gray("ok"))

	SetColorEnabled(false)
	assert.False(t, ColorEnabled())
	for _, color := range []func(string) string{Green, Red, Yellow, Gray} {
		assert.Equal(t, "ok", color("ok"))
	}
}

func TestStatusLabel(t *testing.T) {
	SetColorEnabled(false)

	assert.Equal(t, "✓ done", StatusLabel(model.StatusDone))
	assert.Equal(t, "• due", StatusLabel(model.StatusDue))
	assert.Equal(t, "- lapsed", StatusLabel(model.StatusLapsed))
	assert.Equal(t, "- new", StatusLabel(model.StatusNew))
}

func TestDays(t *testing.T) {
	assert.Equal(t, "0 days", Days(0))
	assert.Equal(t, "1 day", Days(1))
	assert.Equal(t, "12 days", Days(12))
}

func renderTable(t *Table) string {
	var buf bytes.Buffer
	t.Render(&buf)
	return buf.String()
}

func TestTableLayout(t *testing.T) {
	tests := []struct {
		name  string
		setup func(*Table)
		rows  [][]string
		want  string
	}{
		{
			name: "empty",
			want: "",
		},
		{
			name: "single row",
			rows: [][]string{{"one", "two", "three"}},
			want: "one  two  three\n",
		},
		{
			name: "columns sized to widest cell",
			rows: [][]string{
				{"4b0c5d2e", "done", "Read"},
				{"9e1f", "lapsed", "Stretch before bed"},
			},
			want: "4b0c5d2e  done    Read\n" +
				"9e1f      lapsed  Stretch before bed\n",
		},
		{
			name: "uneven rows",
			rows: [][]string{{"a", "b", "c"}, {"dd", "e"}},
			want: "a   b  c\n" +
				"dd  e\n",
		},
		{
			name:  "right aligned middle column",
			setup: func(t *Table) { t.SetAlignRight(1) },
			rows:  [][]string{{"Read", "3", "x"}, {"Stretch", "120", "y"}},
			want: "Read       3  x\n" +
				"Stretch  120  y\n",
		},
		{
			name:  "right aligned last column",
			setup: func(t *Table) { t.SetAlignRight(1) },
			rows:  [][]string{{"a", "7"}, {"b", "42"}},
			want:  "a   7\nb  42\n",
		},
		{
			name:  "max width truncates and caps the column",
			setup: func(t *Table) { t.SetMaxWidth(0, 8) },
			rows:  [][]string{{"Stretch before bed", "2"}, {"Read", "5"}},
			want: "Stret...  2\n" +
				"Read      5\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := NewTable()
			if tt.setup != nil {
				tt.setup(table)
			}
			for _, row := range tt.rows {
				table.AddRow(row...)
			}
			assert.Equal(t, tt.want, renderTable(table))
		})
	}
}

func TestTableIgnoresColorCodesInWidths(t *testing.T) {
	SetColorEnabled(true)
	defer SetColorEnabled(false)

	table := NewTable()
	table.AddRow(Green("done"), "Read")
	table.AddRow(Red("lapsed"), "Stretch")

	lines := strings.Split(strings.TrimRight(renderTable(table), "\n"), "\n")
	assert.Equal(t, Green("done")+"    Read", lines[0])
	assert.Equal(t, Red("lapsed")+"  Stretch", lines[1])
}

func TestVisibleWidth(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"hello", 5},
		{"", 0},
		{"✓ done", 6},
		{"\033[32mhello\033[0m", 5},
		{"\033[31m\033[0m", 0},
		{"a\033[32mb\033[0mc", 3},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, visibleWidth(tt.input))
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxWidth int
		want     string
	}{
		{"fits", "hello", 10, "hello"},
		{"exact fit", "hello", 5, "hello"},
		{"truncated", "hello world", 8, "hello..."},
		{"only the ellipsis fits", "hello world", 3, "..."},
		{"below ellipsis width", "hello", 2, "he"},
		{"zero", "hello", 0, ""},
		{"empty", "", 10, ""},
		{"multibyte", "Стретчинг утром", 9, "Стретч..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Truncate(tt.input, tt.maxWidth)
			assert.Equal(t, tt.want, got)
			assert.LessOrEqual(t, visibleWidth(got), tt.maxWidth)
		})
	}
}

func TestTruncateColored(t *testing.T) {
	SetColorEnabled(true)
	defer SetColorEnabled(false)

	got := Truncate(Green("hello world"), 8)
	assert.Equal(t, "\033[32mhello...\033[0m", got)

	short := Green("hi")
	assert.Equal(t, short, Truncate(short, 10))
}
