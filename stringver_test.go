package stringver_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verifykit/stringver"
	"github.com/verifykit/stringver/internal/verrors"
)

// failure unwraps a VerificationFailure and returns the errors recorded for
// the single registered class.
func failure(t *testing.T, err error) []verrors.VerificationError {
	t.Helper()
	var vf *stringver.VerificationFailure
	require.ErrorAs(t, err, &vf)
	results := vf.Results()
	require.Len(t, results, 1)
	return results[0].Errors
}

func TestVerifyAllFieldsRendered(t *testing.T) {
	t.Parallel()

	assert.NoError(t, stringver.ForType[person]().VerifyError())
}

func TestVerifyOmittedFieldFails(t *testing.T) {
	t.Parallel()

	err := stringver.ForType[partial]().VerifyError()
	errs := failure(t, err)
	require.Len(t, errs, 1)

	fve, ok := errs[0].(verrors.FieldValueError)
	require.True(t, ok, "want a FieldValueError, got %T", errs[0])
	require.Len(t, fve.Entries, 1)
	assert.Equal(t, "secret", fve.Entries[0].Name)
}

func TestVerifyMismatchedValuesAggregateIntoOneError(t *testing.T) {
	t.Parallel()

	err := stringver.ForType[staticPerson]().
		WithPrefabValue(0, 1).
		WithPrefabValue("", "B").
		VerifyError()

	errs := failure(t, err)
	require.Len(t, errs, 1)

	fve, ok := errs[0].(verrors.FieldValueError)
	require.True(t, ok)
	assert.Equal(t, []verrors.FieldValue{
		{Name: "firstName", Expected: "B"},
		{Name: "lastName", Expected: "B"},
	}, fve.Entries)
}

func TestVerifyWithPrefabValues(t *testing.T) {
	t.Parallel()

	assert.NoError(t, stringver.ForType[staticPerson]().
		WithPrefabValue(0, 1).
		WithPrefabValue("", "A").
		VerifyError())
}

func TestClassNameStyles(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		verifier    *stringver.Verifier
		wantSegment string // empty means success
	}{
		"simple name present": {
			verifier: stringver.ForType[simpleNamed]().WithClassName(stringver.NameStyleSimpleName),
		},
		"qualified name missing": {
			verifier:    stringver.ForType[simpleNamed]().WithClassName(stringver.NameStyleName),
			wantSegment: "stringver_test.simpleNamed",
		},
		"qualified name present": {
			verifier: stringver.ForType[qualifiedNamed]().WithClassName(stringver.NameStyleName),
		},
		"style none skips the check": {
			verifier: stringver.ForType[simpleNamed]().WithClassName(stringver.NameStyleNone),
		},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			err := tt.verifier.VerifyError()
			if tt.wantSegment == "" {
				assert.NoError(t, err)
				return
			}
			errs := failure(t, err)
			require.Len(t, errs, 1)
			assert.Equal(t, verrors.ClassNameError{ExpectedSegment: tt.wantSegment}, errs[0])
		})
	}
}

func TestHashCodeCheck(t *testing.T) {
	t.Parallel()

	t.Run("matching hash passes", func(t *testing.T) {
		t.Parallel()

		assert.NoError(t, stringver.ForType[hashStamped]().
			WithHashCode(true).
			WithHashFunc(func(any) uint64 { return 123 }).
			VerifyError())
	})

	t.Run("mismatched hash fails with the expected hash", func(t *testing.T) {
		t.Parallel()

		err := stringver.ForType[hashStamped]().
			WithHashCode(true).
			WithHashFunc(func(any) uint64 { return 999 }).
			VerifyError()

		errs := failure(t, err)
		require.Len(t, errs, 1)
		assert.Equal(t, verrors.HashCodeError{ExpectedHash: 999}, errs[0])
	})

	t.Run("default hash is the instance address", func(t *testing.T) {
		t.Parallel()

		assert.NoError(t, stringver.ForType[selfHashed]().
			WithHashCode(true).
			VerifyError())
	})
}

func TestNullSentinel(t *testing.T) {
	t.Parallel()

	t.Run("sentinel matches rendered nil marker", func(t *testing.T) {
		t.Parallel()

		assert.NoError(t, stringver.ForType[record]().
			WithPrefabValue((*int)(nil), nil).
			WithNullValue("<none>").
			VerifyError())
	})

	t.Run("sentinel mismatch names the field and the sentinel", func(t *testing.T) {
		t.Parallel()

		err := stringver.ForType[record]().
			WithPrefabValue((*int)(nil), nil).
			WithNullValue("<NULL>").
			VerifyError()

		errs := failure(t, err)
		require.Len(t, errs, 1)
		fve, ok := errs[0].(verrors.FieldValueError)
		require.True(t, ok)
		assert.Equal(t, []verrors.FieldValue{{Name: "id", Expected: "<NULL>"}}, fve.Entries)
	})
}

func TestFormatter(t *testing.T) {
	t.Parallel()

	dollars := func(v any) string { return "$" + strconv.Itoa(v.(int)) }

	t.Run("formatter output matches", func(t *testing.T) {
		t.Parallel()

		assert.NoError(t, stringver.ForType[priced]().
			WithFormatter(0, dollars).
			VerifyError())
	})

	t.Run("formatter output mismatch fails", func(t *testing.T) {
		t.Parallel()

		err := stringver.ForType[priced]().
			WithFormatter(0, func(v any) string { return "USD" + strconv.Itoa(v.(int)) }).
			VerifyError()

		errs := failure(t, err)
		require.Len(t, errs, 1)
		fve, ok := errs[0].(verrors.FieldValueError)
		require.True(t, ok)
		assert.Equal(t, []verrors.FieldValue{{Name: "cents", Expected: "USD1"}}, fve.Entries)
	})
}

func TestFieldSelection(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		verifier *stringver.Verifier
		wantPass bool
	}{
		"all fields fails on omitted secret": {
			verifier: stringver.ForType[partial](),
			wantPass: false,
		},
		"ignored secret passes": {
			verifier: stringver.ForType[partial]().WithIgnoredFields("secret"),
			wantPass: true,
		},
		"only id passes": {
			verifier: stringver.ForType[partial]().WithOnlyTheseFields("id"),
			wantPass: true,
		},
		"matching id passes": {
			verifier: stringver.ForType[partial]().WithMatchingFields("^id$"),
			wantPass: true,
		},
		"empty only list skips all fields": {
			verifier: stringver.ForType[partial]().WithOnlyTheseFields(),
			wantPass: true,
		},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			err := tt.verifier.VerifyError()
			if tt.wantPass {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestInheritedFields(t *testing.T) {
	t.Parallel()

	t.Run("promoted fields verified by default", func(t *testing.T) {
		t.Parallel()

		assert.NoError(t, stringver.ForType[user]().VerifyError())

		err := stringver.ForType[orphan]().VerifyError()
		errs := failure(t, err)
		require.Len(t, errs, 1)
		fve, ok := errs[0].(verrors.FieldValueError)
		require.True(t, ok)
		assert.Equal(t, "id", fve.Entries[0].Name)
	})

	t.Run("disabled inheritance skips promoted fields", func(t *testing.T) {
		t.Parallel()

		assert.NoError(t, stringver.ForType[orphan]().
			WithInheritedFields(false).
			VerifyError())
	})
}

func TestCustomFieldValuePattern(t *testing.T) {
	t.Parallel()

	assert.NoError(t, stringver.ForType[colonSep]().
		WithFieldValuePattern(`%s: %s(?:, |\)$)`).
		VerifyError())
}
