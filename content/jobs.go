package content

// JobPosting is a localized job listing shown on the jobs page.
type JobPosting struct {
	ID           int      `json:"id"`
	Title        string   `json:"title"`
	Location     string   `json:"location"`
	Type         string   `json:"type"`
	Department   string   `json:"department"`
	Description  string   `json:"description"`
	Requirements []string `json:"requirements"`
	Benefits     []string `json:"benefits"`
}

var jobsByLocale = map[string][]JobPosting{
	LocaleDutch: {
		{
			ID:         1,
			Title:      "Sales Advisor",
			Location:   "350 Avenue Louise, 1050 Brussel",
			Type:       "Voltijds",
			Department: "Sales",
			Description: "Versterk ons dynamische salesteam als Sales Advisor. Je bouwt relaties " +
				"op met klanten en helpt hen de juiste oplossingen te vinden voor hun behoeften.",
			Requirements: []string{
				"Sterke communicatievaardigheden in het Nederlands en Engels",
				"Klantgerichte instelling",
				"Kunnen werken in een snel veranderende omgeving",
				"Saleservaring is een plus maar niet vereist",
			},
			Benefits: []string{
				"Uitgebreid opleidingsprogramma",
				"Doorgroeimogelijkheden",
				"Dynamisch en jong team",
				"Flexibele werkregeling",
			},
		},
		{
			ID:         2,
			Title:      "Sales Representative",
			Location:   "350 Avenue Louise, 1050 Brussel",
			Type:       "Voltijds",
			Department: "Sales",
			Description: "Als Sales Representative sta je vooraan in onze B2B-campagnes en help " +
				"je bedrijven groeien met onze schaalbare marketingoplossingen.",
			Requirements: []string{
				"Uitstekende sociale vaardigheden",
				"Doelgerichte houding",
				"Vloeiend Nederlands, Frans is een plus",
				"Rijbewijs is een voordeel",
			},
			Benefits: []string{
				"Prestatiegebonden bonussen",
				"Training en ontwikkeling",
				"Teambuildingevenementen",
				"Doorgroei naar leidinggevende rollen",
			},
		},
		{
			ID:         3,
			Title:      "Sales & Marketing",
			Location:   "350 Avenue Louise, 1050 Brussel",
			Type:       "Voltijds",
			Department: "Marketing",
			Description: "Combineer je passie voor sales en marketing in deze hybride rol. Help " +
				"campagnes ontwikkelen en uitvoeren die resultaten opleveren voor onze klanten.",
			Requirements: []string{
				"Creatieve geest met analytische vaardigheden",
				"Kennis van digitale marketing",
				"Sterke presentatievaardigheden",
				"Teamspeler die ook zelfstandig kan werken",
			},
			Benefits: []string{
				"Hands-on marketingervaring",
				"Toegang tot branche-evenementen",
				"Mentorschapsprogramma",
				"Franchisemogelijkheden",
			},
		},
	},
	LocaleFrench: {
		{
			ID:         1,
			Title:      "Sales Advisor",
			Location:   "350 Avenue Louise, 1050 Bruxelles",
			Type:       "Temps plein",
			Department: "Sales",
			Description: "Rejoignez notre équipe de vente dynamique en tant que Sales Advisor. " +
				"Vous construisez des relations avec les clients et les aidez à trouver les bonnes solutions.",
			Requirements: []string{
				"Excellentes compétences en communication en français et en anglais",
				"Orientation client",
				"Capacité à travailler dans un environnement dynamique",
				"Une expérience en vente est un plus mais pas obligatoire",
			},
			Benefits: []string{
				"Programme de formation complet",
				"Possibilités d'évolution de carrière",
				"Équipe jeune et dynamique",
				"Horaires de travail flexibles",
			},
		},
		{
			ID:         2,
			Title:      "Sales Representative",
			Location:   "350 Avenue Louise, 1050 Bruxelles",
			Type:       "Temps plein",
			Department: "Sales",
			Description: "En tant que Sales Representative, vous êtes en première ligne de nos " +
				"campagnes B2B et aidez les entreprises à grandir grâce à nos solutions marketing évolutives.",
			Requirements: []string{
				"Excellentes compétences interpersonnelles",
				"Esprit orienté résultats",
				"Français courant, le néerlandais est un plus",
				"Permis de conduire souhaité",
			},
			Benefits: []string{
				"Bonus liés aux performances",
				"Formation et développement",
				"Événements de team building",
				"Évolution vers des postes de direction",
			},
		},
		{
			ID:         3,
			Title:      "Sales & Marketing",
			Location:   "350 Avenue Louise, 1050 Bruxelles",
			Type:       "Temps plein",
			Department: "Marketing",
			Description: "Combinez votre passion pour la vente et le marketing dans ce rôle " +
				"hybride. Participez à des campagnes qui produisent des résultats pour nos clients.",
			Requirements: []string{
				"Esprit créatif et compétences analytiques",
				"Compréhension du marketing digital",
				"Fortes capacités de présentation",
				"Esprit d'équipe et autonomie",
			},
			Benefits: []string{
				"Expérience marketing pratique",
				"Accès aux événements du secteur",
				"Programme de mentorat",
				"Opportunités de franchise",
			},
		},
	},
}

// Jobs returns the job postings for a locale.
func Jobs(locale string) []JobPosting {
	if jobs, ok := jobsByLocale[locale]; ok {
		return jobs
	}
	return jobsByLocale[LocaleDutch]
}
