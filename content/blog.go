package content

// BlogPost is a localized article teaser; the body lives in the CMS export
// and is keyed by slug.
type BlogPost struct {
	Slug     string `json:"slug"`
	Title    string `json:"title"`
	Excerpt  string `json:"excerpt"`
	Category string `json:"category"`
	Date     string `json:"date"`
}

var postsByLocale = map[string][]BlogPost{
	LocaleDutch: {
		{
			Slug:     "waarom-direct-sales-carriere",
			Title:    "5 Redenen Waarom Direct Sales Jouw Carrière Kan Lanceren",
			Excerpt:  "Ontdek waarom een start in direct sales de snelste leerschool is voor jonge professionals.",
			Category: "Carrière",
			Date:     "9 December 2024",
		},
		{
			Slug:     "kunst-b2b-netwerken-belgie",
			Title:    "De Kunst van B2B Netwerken in België",
			Excerpt:  "Praktische tips om duurzame zakelijke relaties op te bouwen in de Belgische markt.",
			Category: "Netwerken",
			Date:     "2 December 2024",
		},
		{
			Slug:     "groeipad-rtt-commerce",
			Title:    "Van Starter tot Team Leader: Jouw Groeipad bij RTT Commerce",
			Excerpt:  "Hoe ons interne doorgroeitraject werkt en wat je kunt verwachten in je eerste jaar.",
			Category: "Carrière",
			Date:     "25 November 2024",
		},
		{
			Slug:     "klantrelaties-bouwen",
			Title:    "Hoe Je Klantrelaties Bouwt Die Blijven",
			Excerpt:  "Vertrouwen is de basis van elke verkoop. Zo bouw je relaties die jaren meegaan.",
			Category: "Sales",
			Date:     "18 November 2024",
		},
		{
			Slug:     "sales-tips-young-professionals-2024",
			Title:    "Sales Tips voor Young Professionals in 2024",
			Excerpt:  "De vaardigheden die het verschil maken voor starters in sales dit jaar.",
			Category: "Sales",
			Date:     "10 November 2024",
		},
		{
			Slug:     "werken-als-brand-ambassador",
			Title:    "Werken als Brand Ambassador: Wat Kun Je Verwachten?",
			Excerpt:  "Een dag uit het leven van een brand ambassador bij onze campagnes.",
			Category: "Carrière",
			Date:     "1 November 2024",
		},
	},
	LocaleFrench: {
		{
			Slug:     "waarom-direct-sales-carriere",
			Title:    "5 Raisons Pour Lesquelles la Vente Directe Peut Lancer Votre Carrière",
			Excerpt:  "Découvrez pourquoi débuter dans la vente directe est la meilleure école pour les jeunes professionnels.",
			Category: "Carrière",
			Date:     "9 décembre 2024",
		},
		{
			Slug:     "kunst-b2b-netwerken-belgie",
			Title:    "L'Art du Réseautage B2B en Belgique",
			Excerpt:  "Des conseils pratiques pour construire des relations d'affaires durables sur le marché belge.",
			Category: "Réseautage",
			Date:     "2 décembre 2024",
		},
		{
			Slug:     "groeipad-rtt-commerce",
			Title:    "De Débutant à Team Leader : Votre Parcours chez RTT Commerce",
			Excerpt:  "Comment fonctionne notre trajectoire d'évolution interne et ce qui vous attend la première année.",
			Category: "Carrière",
			Date:     "25 novembre 2024",
		},
		{
			Slug:     "klantrelaties-bouwen",
			Title:    "Construire des Relations Clients Qui Durent",
			Excerpt:  "La confiance est la base de chaque vente. Voici comment bâtir des relations qui durent des années.",
			Category: "Vente",
			Date:     "18 novembre 2024",
		},
		{
			Slug:     "sales-tips-young-professionals-2024",
			Title:    "Conseils de Vente pour Jeunes Professionnels en 2024",
			Excerpt:  "Les compétences qui font la différence pour les débutants en vente cette année.",
			Category: "Vente",
			Date:     "10 novembre 2024",
		},
		{
			Slug:     "werken-als-brand-ambassador",
			Title:    "Travailler comme Brand Ambassador : À Quoi S'Attendre ?",
			Excerpt:  "Une journée dans la vie d'un brand ambassador sur nos campagnes.",
			Category: "Carrière",
			Date:     "1 novembre 2024",
		},
	},
}

// Posts returns the blog posts for a locale, newest first.
func Posts(locale string) []BlogPost {
	if posts, ok := postsByLocale[locale]; ok {
		return posts
	}
	return postsByLocale[LocaleDutch]
}

// PostBySlug looks up a single post. Slugs are shared across locales.
func PostBySlug(locale, slug string) (BlogPost, bool) {
	for _, post := range Posts(locale) {
		if post.Slug == slug {
			return post, true
		}
	}
	return BlogPost{}, false
}
