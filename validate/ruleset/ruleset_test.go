package ruleset_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Redwolfer/satkit/form"
	"github.com/Redwolfer/satkit/validate"
	"github.com/Redwolfer/satkit/validate/ruleset"
)

const signupRules = `
rules:
  - {field: email, rule: required}
  - {field: email, rule: email}
  - {field: age, rule: range, min: 18, max: 99, message: adults only}
  - {field: username, rule: min_len, min_len: 3}
  - {field: username, rule: alphanumeric}
`

func TestParse(t *testing.T) {
	t.Parallel()

	t.Run("decodes rules in order", func(t *testing.T) {
		t.Parallel()

		rs, err := ruleset.Parse(strings.NewReader(signupRules))
		require.NoError(t, err)
		require.Len(t, rs.Rules, 5)
		assert.Equal(t, "email", rs.Rules[0].Field)
		assert.Equal(t, "required", rs.Rules[0].Rule)
		assert.Equal(t, "adults only", rs.Rules[2].Message)
	})

	t.Run("rejects invalid YAML", func(t *testing.T) {
		t.Parallel()

		_, err := ruleset.Parse(strings.NewReader("rules: [}"))
		assert.ErrorIs(t, err, ruleset.ErrInvalidDocument)
	})

	t.Run("rejects empty document", func(t *testing.T) {
		t.Parallel()

		_, err := ruleset.Parse(strings.NewReader("rules: []"))
		assert.ErrorIs(t, err, ruleset.ErrInvalidDocument)
	})
}

func TestCompile(t *testing.T) {
	t.Parallel()

	fields := form.NewFieldSet(
		form.NewText("email", "a@b.com"),
		form.NewText("age", "42"),
		form.NewText("username", "ada99"),
	)

	t.Run("compiles a full rule list", func(t *testing.T) {
		t.Parallel()

		rs, err := ruleset.Parse(strings.NewReader(signupRules))
		require.NoError(t, err)

		rules, err := rs.Compile(fields)
		require.NoError(t, err)
		require.Len(t, rules, 5)
		assert.Equal(t, "required", rules[0].Name)
		assert.Equal(t, "adults only", rules[2].Message)
	})

	t.Run("unknown rule name", func(t *testing.T) {
		t.Parallel()

		rs := &ruleset.RuleSet{Rules: []ruleset.Spec{{Field: "email", Rule: "levenshtein"}}}
		_, err := rs.Compile(fields)
		assert.ErrorIs(t, err, ruleset.ErrUnknownRule)
	})

	t.Run("unknown field", func(t *testing.T) {
		t.Parallel()

		rs := &ruleset.RuleSet{Rules: []ruleset.Spec{{Field: "nope", Rule: "required"}}}
		_, err := rs.Compile(fields)
		assert.ErrorIs(t, err, ruleset.ErrUnknownField)
	})

	t.Run("unknown other field", func(t *testing.T) {
		t.Parallel()

		rs := &ruleset.RuleSet{Rules: []ruleset.Spec{
			{Field: "email", Rule: "equals_field", Other: "email_confirm"},
		}}
		_, err := rs.Compile(fields)
		assert.ErrorIs(t, err, ruleset.ErrUnknownField)
	})

	t.Run("absent other parameter", func(t *testing.T) {
		t.Parallel()

		rs := &ruleset.RuleSet{Rules: []ruleset.Spec{
			{Field: "email", Rule: "required_if"},
		}}
		_, err := rs.Compile(fields)
		assert.ErrorIs(t, err, ruleset.ErrMissingParam)
	})

	t.Run("missing parameter", func(t *testing.T) {
		t.Parallel()

		rs := &ruleset.RuleSet{Rules: []ruleset.Spec{{Field: "age", Rule: "range"}}}
		_, err := rs.Compile(fields)
		assert.ErrorIs(t, err, ruleset.ErrMissingParam)
	})

	t.Run("bad pattern parameter", func(t *testing.T) {
		t.Parallel()

		rs := &ruleset.RuleSet{Rules: []ruleset.Spec{{Field: "username", Rule: "pattern", Pattern: "["}}}
		_, err := rs.Compile(fields)
		assert.ErrorIs(t, err, ruleset.ErrBadParam)
	})

	t.Run("bad date bound", func(t *testing.T) {
		t.Parallel()

		rs := &ruleset.RuleSet{Rules: []ruleset.Spec{
			{Field: "age", Rule: "date_min", After: "not-a-date"},
		}}
		_, err := rs.Compile(fields)
		assert.ErrorIs(t, err, ruleset.ErrBadParam)
	})
}

func TestRun(t *testing.T) {
	t.Parallel()

	rs, err := ruleset.Parse(strings.NewReader(signupRules))
	require.NoError(t, err)

	t.Run("passing form", func(t *testing.T) {
		t.Parallel()

		fields := form.NewFieldSet(
			form.NewText("email", "ada@example.com"),
			form.NewText("age", "30"),
			form.NewText("username", "ada99"),
		)
		assert.NoError(t, rs.Run(validate.NewSession(nil), fields))
	})

	t.Run("later passing rule keeps a field's earlier failure", func(t *testing.T) {
		t.Parallel()

		// name is declared required and then length-capped; an empty name
		// satisfies the cap, which must not wipe the required failure.
		doc := `
rules:
  - {field: name, rule: required}
  - {field: name, rule: max_len, max_len: 100}
`
		rs, err := ruleset.Parse(strings.NewReader(doc))
		require.NoError(t, err)

		fields := form.NewFieldSet(form.NewText("name", ""))
		runErr := rs.Run(validate.NewSession(nil), fields)
		require.Error(t, runErr)

		failure, ok := validate.AsValidationFailure(runErr)
		require.True(t, ok)
		require.Len(t, failure.Errors, 1)
		assert.Equal(t, "name", failure.Errors[0].Field)
		assert.Equal(t, "field is required", failure.Errors[0].Message)
	})

	t.Run("failing form accumulates every failed rule", func(t *testing.T) {
		t.Parallel()

		fields := form.NewFieldSet(
			form.NewText("email", ""),
			form.NewText("age", "17"),
			form.NewText("username", "a!"),
		)

		err := rs.Run(validate.NewSession(nil), fields)
		require.Error(t, err)

		failure, ok := validate.AsValidationFailure(err)
		require.True(t, ok)
		// email fails required and email, but holds one entry; age and
		// username each fail once.
		require.Len(t, failure.Errors, 3)
		assert.Equal(t, "email", failure.Errors[0].Field)
		assert.Equal(t, "age", failure.Errors[1].Field)
		assert.Equal(t, "adults only", failure.Errors[1].Message)
		assert.Equal(t, "username", failure.Errors[2].Field)
	})
}
