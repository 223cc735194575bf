package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveWorkflowMetaUsesPresetVerbatim(t *testing.T) {
	meta := ResolveWorkflowMeta("lead-gen.json")

	assert.Equal(t, "Lead Gen LinkedIn", meta.Name)
	assert.Equal(t, "Extraction et qualification automatique de leads depuis LinkedIn.", meta.Description)

	meta = ResolveWorkflowMeta("CLAUDE.md")
	assert.Equal(t, "Claude Context Remotion", meta.Name)

	meta = ResolveWorkflowMeta("Veille IA 8H.json")
	assert.Equal(t, "Veille IA - Automatisation 8H", meta.Name)
}

func TestGeneratedNameTitleCasesWords(t *testing.T) {
	meta := ResolveWorkflowMeta("data-scraping-pro.json")
	assert.Equal(t, "Data Scraping Pro", meta.Name)

	// Underscores and spaces are separators too
	meta = ResolveWorkflowMeta("invoice_reminder flow.json")
	assert.Equal(t, "Invoice Reminder Flow", meta.Name)
}

func TestGeneratedNameKeepsShortAcronyms(t *testing.T) {
	meta := ResolveWorkflowMeta("SEO-report-2024.json")
	assert.Equal(t, "SEO Report 2024", meta.Name)

	// Four letters or more gets title-cased even if uppercase
	meta = ResolveWorkflowMeta("ASAP-fix.json")
	assert.Equal(t, "Asap Fix", meta.Name)
}

func TestGeneratedNameStripsExtensionCaseInsensitively(t *testing.T) {
	assert.Equal(t, "Notes", ResolveWorkflowMeta("notes.MD").Name)
	assert.Equal(t, "Report", ResolveWorkflowMeta("report.JSON").Name)
}

func TestGeneratedNameFallsBackWhenEmpty(t *testing.T) {
	assert.Equal(t, "Workflow n8n", ResolveWorkflowMeta("---.json").Name)
	assert.Equal(t, "Workflow n8n", ResolveWorkflowMeta(".json").Name)
}

func TestDescriptionKeywordPriority(t *testing.T) {
	// "cro" must win even though "audit" would fall through to generic
	meta := ResolveWorkflowMeta("CRO-audit.json")
	assert.Equal(t, "Analyse et optimisation du taux de conversion de vos pages.", meta.Description)

	// "seo" is checked before "mail"
	meta = ResolveWorkflowMeta("seo-mail-digest.json")
	assert.Equal(t, "Workflow d'optimisation SEO et génération de contenu automatique.", meta.Description)
}

func TestDescriptionSubstringMatch(t *testing.T) {
	// "prospection" contains "prospect"
	meta := ResolveWorkflowMeta("prospection-auto.json")
	assert.Equal(t, "Automatisation de la prospection et qualification de leads.", meta.Description)
}

func TestDescriptionGenericFallback(t *testing.T) {
	meta := ResolveWorkflowMeta("pipeline.json")
	assert.Equal(t, "Workflow d'automatisation n8n prêt à l'emploi.", meta.Description)
}
