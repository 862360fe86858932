package insight

import (
	"github.com/reviewsight-lab/reviewsight/pkg/domain/model"
	"github.com/reviewsight-lab/reviewsight/pkg/domain/types"
)

// Deterministic tier templates, the last stage of the fallback chain. One
// fixed report per average-rating tier.
var tierReports = map[types.RatingTier]model.InsightReport{
	types.RatingTierHigh: {
		Summary: "Les clients sont globalement très satisfaits : la note moyenne est élevée et les retours positifs dominent nettement.",
		Strengths: []string{
			"Qualité de service saluée par une large majorité des avis",
			"Clients fidèles qui recommandent spontanément l'entreprise",
			"Expérience globale perçue comme fiable et constante",
		},
		Improvements: []string{
			"Maintenir le niveau de qualité sur les périodes de forte activité",
			"Répondre aux rares avis négatifs restés sans réponse",
			"Harmoniser l'expérience entre les différentes plateformes",
		},
		Recommendations: []string{
			"Mettre en avant les avis positifs dans la communication",
			"Solliciter les clients satisfaits pour de nouveaux avis",
			"Surveiller les indicateurs pour détecter toute dégradation précoce",
		},
		Trends: []string{
			"Sentiment positif stable sur la période analysée",
			"Volume d'avis en progression régulière",
			"Faible proportion de réclamations récurrentes",
		},
	},
	types.RatingTierMid: {
		Summary: "La satisfaction client est moyenne : les avis positifs et négatifs s'équilibrent et la marge de progression est réelle.",
		Strengths: []string{
			"Base de clients satisfaits sur laquelle capitaliser",
			"Produit ou service jugé correct dans l'ensemble",
			"Présence établie sur plusieurs plateformes d'avis",
		},
		Improvements: []string{
			"Traiter les motifs d'insatisfaction les plus fréquents",
			"Réduire les délais de réponse aux réclamations",
			"Clarifier la communication sur les prix et conditions",
		},
		Recommendations: []string{
			"Prioriser les catégories d'avis aux notes les plus basses",
			"Mettre en place un suivi systématique des avis négatifs",
			"Mesurer l'effet des actions correctives sur la note moyenne",
		},
		Trends: []string{
			"Note moyenne stable sans amélioration marquée",
			"Sentiment partagé entre avis positifs et négatifs",
			"Thématiques d'insatisfaction récurrentes dans les avis",
		},
	},
	types.RatingTierLow: {
		Summary: "La satisfaction client est faible : les avis négatifs dominent et des actions correctives rapides sont nécessaires.",
		Strengths: []string{
			"Les clients prennent le temps de détailler leurs problèmes",
			"Les attentes exprimées sont claires et actionnables",
			"Quelques avis positifs montrent que l'offre peut convaincre",
		},
		Improvements: []string{
			"Résoudre en priorité les problèmes cités dans la majorité des avis",
			"Améliorer la qualité du support et les délais de réponse",
			"Revoir le rapport qualité-prix perçu par les clients",
		},
		Recommendations: []string{
			"Lancer un plan d'action correctif sur les catégories critiques",
			"Recontacter les clients insatisfaits pour résoudre leurs litiges",
			"Communiquer publiquement sur les améliorations engagées",
		},
		Trends: []string{
			"Dégradation du sentiment sur la période analysée",
			"Concentration des avis négatifs sur quelques thématiques",
			"Risque d'attrition élevé sans action rapide",
		},
	},
}

// TierReport returns the fixed report for an average rating's tier
func TierReport(averageRating float64) *model.InsightReport {
	report := tierReports[types.TierForRating(averageRating)]
	return &report
}
