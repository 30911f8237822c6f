package content

// SocialLink is an external social profile of the company.
type SocialLink struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// ContactInfo is the static contact block rendered on the contact page.
type ContactInfo struct {
	Address      []string     `json:"address"`
	Email        string       `json:"email"`
	Phone        string       `json:"phone"`
	OpeningHours []string     `json:"openingHours"`
	Socials      []SocialLink `json:"socials"`
}

var contactByLocale = map[string]ContactInfo{
	LocaleDutch: {
		Address:      []string{"350 Avenue Louise", "1050 Brussel, België"},
		Email:        "support@rtt-commerce.com",
		Phone:        "+32 492 525 183",
		OpeningHours: []string{"Ma-Vr: 9:00 - 18:00", "Za-Zo: gesloten"},
		Socials:      socials,
	},
	LocaleFrench: {
		Address:      []string{"350 Avenue Louise", "1050 Bruxelles, Belgique"},
		Email:        "support@rtt-commerce.com",
		Phone:        "+32 492 525 183",
		OpeningHours: []string{"Lun-Ven : 9h00 - 18h00", "Sam-Dim : fermé"},
		Socials:      socials,
	},
}

var socials = []SocialLink{
	{Name: "Facebook", URL: "https://www.facebook.com/RTTANTWERP"},
	{Name: "Instagram", URL: "https://www.instagram.com/rtt_commerce/"},
	{Name: "LinkedIn", URL: "https://www.linkedin.com/company/rtt-commerce-bv/"},
}

// Contact returns the contact info for a locale.
func Contact(locale string) ContactInfo {
	if info, ok := contactByLocale[locale]; ok {
		return info
	}
	return contactByLocale[LocaleDutch]
}
