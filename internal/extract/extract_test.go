package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const defaultPattern = `%s=%s(?:, |\}|$)`

func TestCompilePattern(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		pattern string
		wantErr string
	}{
		"default pattern compiles": {
			pattern: defaultPattern,
		},
		"custom boundary compiles": {
			pattern: `%s: %s;`,
		},
		"empty pattern rejected": {
			pattern: "",
			wantErr: "pattern is empty",
		},
		"one placeholder rejected": {
			pattern: "%s=",
			wantErr: "contains 1 %s placeholders, want exactly 2",
		},
		"three placeholders rejected": {
			pattern: "%s=%s%s",
			wantErr: "contains 3 %s placeholders, want exactly 2",
		},
		"invalid regex rejected": {
			pattern: `%s=[%s`,
			wantErr: "not a valid regular expression",
		},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			m, err := CompilePattern(tt.pattern)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.pattern, m.Pattern())
		})
	}
}

func TestExtract(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		pattern   string
		text      string
		field     string
		wantValue string
		wantFound bool
	}{
		"middle field": {
			pattern:   defaultPattern,
			text:      "person{id=1, firstName=A, lastName=B}",
			field:     "firstName",
			wantValue: "A",
			wantFound: true,
		},
		"first field": {
			pattern:   defaultPattern,
			text:      "person{id=1, firstName=A}",
			field:     "id",
			wantValue: "1",
			wantFound: true,
		},
		"last field before closing brace": {
			pattern:   defaultPattern,
			text:      "person{id=1, lastName=B}",
			field:     "lastName",
			wantValue: "B",
			wantFound: true,
		},
		"end of text boundary": {
			pattern:   defaultPattern,
			text:      "id=42",
			field:     "id",
			wantValue: "42",
			wantFound: true,
		},
		"missing field reported as not found": {
			pattern:   defaultPattern,
			text:      "person{id=1}",
			field:     "firstName",
			wantFound: false,
		},
		"leftmost match wins on ambiguous layout": {
			pattern:   defaultPattern,
			text:      "a{x=1, y=2, x=3}",
			field:     "x",
			wantValue: "1",
			wantFound: true,
		},
		"field name is quoted literally": {
			pattern:   defaultPattern,
			text:      "a{x.y=1, xay=2}",
			field:     "x.y",
			wantValue: "1",
			wantFound: true,
		},
		"pattern with own group before the value": {
			pattern:   `%s(=|: )%s(?:, |\}|$)`,
			text:      "a{n: 9}",
			field:     "n",
			wantValue: "9",
			wantFound: true,
		},
		"empty value": {
			pattern:   defaultPattern,
			text:      "a{n=, m=2}",
			field:     "n",
			wantValue: "",
			wantFound: true,
		},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			m, err := CompilePattern(tt.pattern)
			require.NoError(t, err)

			value, found := m.Extract(tt.text, tt.field)
			assert.Equal(t, tt.wantFound, found)
			assert.Equal(t, tt.wantValue, value)
		})
	}
}

func TestExtractCachesPerFieldExpressions(t *testing.T) {
	t.Parallel()

	m, err := CompilePattern(defaultPattern)
	require.NoError(t, err)

	for n := 0; n < 3; n++ {
		v, found := m.Extract("a{n=5}", "n")
		assert.True(t, found)
		assert.Equal(t, "5", v)
	}
	assert.Len(t, m.perField, 2) // probe + n
}
