package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/canopy/pkg/domain"
)

const sampleYAML = `
programs:
  p1:
    name: Onboarding
    description: Intro program
forms:
  f1:
    title: Signup
    description: Collect signup details
    program: p1
    completion_branch: b1
    trigger_phrases:
      - sign me up
    fields:
      - id: email
        label: Email
        type: text
        required: true
ctas:
  c1:
    label: Start signup
    action: start_form
    form_id: f1
branches:
  b1:
    detection_keywords: [signup]
    available_ctas:
      primary: c1
      secondary: [c1]
chips:
  ch1:
    label: Sign up
    action: explicit_routing
    target_branch: b1
showcase:
  - id: s1
    name: Starter Kit
    tagline: Get going fast
    description: Everything you need
    type: bundle
    action:
      label: Open
      type: cta
      cta_id: c1
`

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_YAML(t *testing.T) {
	src := New(writeConfig(t, "config.yaml", sampleYAML))

	c, err := src.Load(context.Background())
	require.NoError(t, err)

	program, ok := c.Program("p1")
	require.True(t, ok)
	assert.Equal(t, "p1", program.ID, "ID backfilled from map key")
	assert.Equal(t, "Onboarding", program.Name)

	form, ok := c.Form("f1")
	require.True(t, ok)
	assert.Equal(t, "b1", form.CompletionBranch)
	require.Len(t, form.Fields, 1)
	assert.True(t, form.Fields[0].Required)

	cta, ok := c.CTA("c1")
	require.True(t, ok)
	assert.Equal(t, domain.CTAStartForm, cta.Action)

	branch, ok := c.Branch("b1")
	require.True(t, ok)
	assert.Equal(t, []string{"c1"}, branch.AvailableCTAs.Secondary)

	item, ok := c.ShowcaseItem("s1")
	require.True(t, ok)
	require.NotNil(t, item.Action)
	assert.Equal(t, domain.ShowcaseCTA, item.Action.Type)
	assert.Equal(t, "c1", item.Action.CTAID)
}

func TestLoad_JSON(t *testing.T) {
	src := New(writeConfig(t, "config.json", `{
		"ctas": {"c1": {"label": "Go", "action": "send_query", "query": "hello"}}
	}`))

	c, err := src.Load(context.Background())
	require.NoError(t, err)

	cta, ok := c.CTA("c1")
	require.True(t, ok)
	assert.Equal(t, "c1", cta.ID)
	assert.Equal(t, "hello", cta.Query)
}

func TestLoad_ExplicitIDWins(t *testing.T) {
	src := New(writeConfig(t, "config.yaml", `
programs:
  key_a:
    id: real_id
    name: N
`))

	c, err := src.Load(context.Background())
	require.NoError(t, err)

	program := c.Programs["key_a"]
	assert.Equal(t, "real_id", program.ID, "explicit id field is kept")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := New("/does/not/exist.yaml").Load(context.Background())
	assert.Error(t, err)
}

func TestLoad_Malformed(t *testing.T) {
	src := New(writeConfig(t, "bad.yaml", "programs: [not: a: map"))

	_, err := src.Load(context.Background())
	assert.Error(t, err)
}
