package content

// Event is a company event shown on the events page.
type Event struct {
	Title    string `json:"title"`
	Date     string `json:"date"`
	Location string `json:"location"`
	Upcoming bool   `json:"upcoming"`
}

var eventsByLocale = map[string][]Event{
	LocaleDutch: {
		{Title: "New Year Kickoff 2025", Date: "15 januari 2025", Location: "Brussel, België", Upcoming: true},
		{Title: "Entrepreneur Meet-Up London", Date: "Oktober 2024", Location: "Londen, VK"},
		{Title: "Entrepreneur Meet-Up Paris", Date: "September 2024", Location: "Parijs, Frankrijk"},
		{Title: "Teambuilding", Date: "Augustus 2024", Location: "Brussel, België"},
		{Title: "Sales Training Workshop", Date: "Juli 2024", Location: "Antwerpen, België"},
		{Title: "Jaarlijkse Conferentie", Date: "Juni 2024", Location: "Brussel, België"},
		{Title: "Netwerkdiner", Date: "Mei 2024", Location: "Gent, België"},
	},
	LocaleFrench: {
		{Title: "New Year Kickoff 2025", Date: "15 janvier 2025", Location: "Bruxelles, Belgique", Upcoming: true},
		{Title: "Entrepreneur Meet-Up London", Date: "Octobre 2024", Location: "Londres, Royaume-Uni"},
		{Title: "Entrepreneur Meet-Up Paris", Date: "Septembre 2024", Location: "Paris, France"},
		{Title: "Team Building", Date: "Août 2024", Location: "Bruxelles, Belgique"},
		{Title: "Atelier de Formation en Vente", Date: "Juillet 2024", Location: "Anvers, Belgique"},
		{Title: "Conférence Annuelle", Date: "Juin 2024", Location: "Bruxelles, Belgique"},
		{Title: "Dîner de Réseautage", Date: "Mai 2024", Location: "Gand, Belgique"},
	},
}

// Events returns the events for a locale, upcoming first.
func Events(locale string) []Event {
	if events, ok := eventsByLocale[locale]; ok {
		return events
	}
	return eventsByLocale[LocaleDutch]
}
