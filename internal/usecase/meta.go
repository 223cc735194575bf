package usecase

import (
	"regexp"
	"strings"
)

// WorkflowMeta is the display name and description of one catalog entry.
type WorkflowMeta struct {
	Name        string
	Description string
}

// Hand-curated metadata, keyed by the exact filename in the bucket.
// To add a preset: add a line with the exact JSON filename.
var workflowPresets = map[string]WorkflowMeta{
	"search-console-reports.json": {
		Name:        "Workflow SEO Pro",
		Description: "Génération automatique de rapports SEO depuis Google Search Console vers Google Sheets.",
	},
	"landing-page-cro-audit.json": {
		Name:        "CRO & A/B Testing",
		Description: "Analyse automatique de landing pages avec suggestions d'optimisation CRO par IA.",
	},
	"CLAUDE.md": {
		Name:        "Claude Context Remotion",
		Description: "Mon contexte Claude pour générer des vidéos Remotion automatiquement avec l'IA.",
	},
	"Veille IA 8H.json": {
		Name:        "Veille IA - Automatisation 8H",
		Description: "Workflow de veille technologique IA avec extraction et synthèse automatique toutes les 8 heures.",
	},
	"lead-gen.json": {
		Name:        "Lead Gen LinkedIn",
		Description: "Extraction et qualification automatique de leads depuis LinkedIn.",
	},
	"email-automation.json": {
		Name:        "Email Automation Pro",
		Description: "Séquences d'emails automatisées avec segmentation et personnalisation IA.",
	},
}

var (
	workflowExtPattern = regexp.MustCompile(`(?i)\.(json|md)$`)
	wordSplitPattern   = regexp.MustCompile(`[-_\s]+`)
)

// Keyword checks are substring matches, tested in this order; the first hit
// wins.
var descriptionRules = []struct {
	keywords    []string
	description string
}{
	{[]string{"seo"}, "Workflow d'optimisation SEO et génération de contenu automatique."},
	{[]string{"lead", "prospect"}, "Automatisation de la prospection et qualification de leads."},
	{[]string{"cro", "conversion"}, "Analyse et optimisation du taux de conversion de vos pages."},
	{[]string{"email", "mail"}, "Automatisation d'emails et séquences de nurturing."},
	{[]string{"scraping", "scrape"}, "Extraction automatique de données depuis le web."},
	{[]string{"social", "instagram", "tiktok"}, "Automatisation de posts et engagement sur les réseaux sociaux."},
	{[]string{"claude", "context"}, "Contexte et prompts optimisés pour automatiser avec l'IA."},
	{[]string{"veille", "monitoring", "watch"}, "Système de veille automatisée avec collecte et synthèse d'informations."},
}

const (
	defaultWorkflowName        = "Workflow n8n"
	defaultWorkflowDescription = "Workflow d'automatisation n8n prêt à l'emploi."
)

// ResolveWorkflowMeta returns the preset for a known filename, otherwise
// derives name and description from the filename itself.
func ResolveWorkflowMeta(filename string) WorkflowMeta {
	if preset, ok := workflowPresets[filename]; ok {
		return preset
	}

	return WorkflowMeta{
		Name:        generateName(filename),
		Description: generateDescription(filename),
	}
}

// generateName turns "lead-gen.json" into "Lead Gen". All-caps tokens of up
// to 3 characters are kept as-is (IA, SEO, CRO, 8H...).
func generateName(filename string) string {
	stem := workflowExtPattern.ReplaceAllString(filename, "")

	var words []string
	for _, word := range wordSplitPattern.Split(stem, -1) {
		if word == "" {
			continue
		}
		runes := []rune(word)
		if len(runes) <= 3 && word == strings.ToUpper(word) {
			words = append(words, word)
			continue
		}
		words = append(words, strings.ToUpper(string(runes[0]))+strings.ToLower(string(runes[1:])))
	}

	if len(words) == 0 {
		return defaultWorkflowName
	}

	return strings.Join(words, " ")
}

func generateDescription(filename string) string {
	lower := strings.ToLower(filename)

	for _, rule := range descriptionRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(lower, keyword) {
				return rule.description
			}
		}
	}

	return defaultWorkflowDescription
}
