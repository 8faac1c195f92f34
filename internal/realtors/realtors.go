// Package realtors holds the curated directory of senior-housing real estate
// professionals and the filter applied to it. The directory is editorial
// content, maintained by hand alongside the magazine.
package realtors

// Realtor is one directory entry: an individual agent or a firm.
type Realtor struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Type            string   `json:"type"` // individual|firm
	Location        string   `json:"location"`
	City            string   `json:"city"`
	Specialty       string   `json:"specialty"`
	Description     string   `json:"description"`
	Phone           string   `json:"phone"`
	Email           string   `json:"email"`
	Website         string   `json:"website"`
	Credentials     []string `json:"credentials"`
	YearsExperience int      `json:"years_experience"`
	Initials        string   `json:"initials"`
	Services        []string `json:"services,omitempty"`
}

// Directory is the curated realtor list served by GET /v1/realtors.
var Directory = []Realtor{
	{
		ID:        "mcmullan-realty",
		Name:      "McMullan Realty",
		Type:      "firm",
		Location:  "Cleveland, OH",
		City:      "Cleveland",
		Specialty: "Senior Housing & Downsizing",
		Description: "A trusted name in Cleveland real estate for over two decades, " +
			"specializing in helping seniors find their next home with dignity and patience, " +
			"from downsizing a family home to settling into an active senior community.",
		Phone:           "(216) 555-0142",
		Email:           "info@mcmullanrealty.com",
		Website:         "https://mcmullanrealty.com",
		Credentials:     []string{"Certified Seniors Real Estate Specialist (SRES)", "Ohio Licensed Real Estate Broker"},
		YearsExperience: 22,
		Initials:        "MR",
		Services:        []string{"downsizing", "senior communities", "family coordination"},
	},
	{
		ID:        "james-washington",
		Name:      "James Washington",
		Type:      "individual",
		Location:  "Akron, OH",
		City:      "Akron",
		Specialty: "First-Time Senior Buyers",
		Description: "A former social worker turned realtor, James specializes in seniors " +
			"navigating retirement housing for the first time, with a patient, educational " +
			"approach to financing and housing options.",
		Phone:           "(330) 555-0198",
		Email:           "james@washingtonrealty.com",
		Website:         "https://washingtonrealty.com",
		Credentials:     []string{"Seniors Real Estate Specialist (SRES)", "Certified Residential Specialist (CRS)"},
		YearsExperience: 15,
		Initials:        "JW",
		Services:        []string{"first-time buyers", "financing guidance"},
	},
	{
		ID:        "diana-brooks",
		Name:      "Diana Brooks",
		Type:      "individual",
		Location:  "Shaker Heights, OH",
		City:      "Shaker Heights",
		Specialty: "Luxury Senior Living",
		Description: "The premier realtor for luxury senior living in Greater Cleveland: " +
			"high-end condominiums, estate properties, and communities with concierge " +
			"services, wellness facilities, and cultural programming.",
		Phone:           "(216) 555-0276",
		Email:           "diana@brooksfinehomes.com",
		Website:         "https://brooksfinehomes.com",
		Credentials:     []string{"Certified Luxury Home Marketing Specialist", "Seniors Real Estate Specialist (SRES)"},
		YearsExperience: 18,
		Initials:        "DB",
		Services:        []string{"luxury communities", "estate sales", "relocation"},
	},
	{
		ID:        "marcus-coleman",
		Name:      "Marcus Coleman",
		Type:      "individual",
		Location:  "Columbus, OH",
		City:      "Columbus",
		Specialty: "Accessible & Assisted Living",
		Description: "Marcus works with seniors and families who need accessible housing " +
			"or a transition into assisted living, coordinating with care providers and " +
			"occupational therapists to match homes to mobility needs.",
		Phone:           "(614) 555-0113",
		Email:           "marcus@colemanhomes.com",
		Website:         "https://colemanhomes.com",
		Credentials:     []string{"Seniors Real Estate Specialist (SRES)", "Certified Aging-in-Place Specialist (CAPS)"},
		YearsExperience: 12,
		Initials:        "MC",
		Services:        []string{"accessibility assessment", "assisted living", "care coordination"},
	},
	{
		ID:        "harborview-partners",
		Name:      "Harborview Senior Partners",
		Type:      "firm",
		Location:  "Sandusky, OH",
		City:      "Sandusky",
		Specialty: "Lakeside Retirement Communities",
		Description: "A boutique firm focused on lakeside retirement living along Lake Erie, " +
			"pairing seniors with waterfront condominiums and small-town communities within " +
			"reach of family in the Cleveland and Toledo areas.",
		Phone:           "(419) 555-0167",
		Email:           "hello@harborviewpartners.com",
		Website:         "https://harborviewpartners.com",
		Credentials:     []string{"Ohio Licensed Real Estate Brokerage"},
		YearsExperience: 9,
		Initials:        "HP",
		Services:        []string{"waterfront properties", "senior communities"},
	},
	{
		ID:        "ruth-alvarez",
		Name:      "Ruth Alvarez",
		Type:      "individual",
		Location:  "Dayton, OH",
		City:      "Dayton",
		Specialty: "Senior Housing & Downsizing",
		Description: "Ruth helps long-time homeowners through the emotional and practical " +
			"work of downsizing: staging, estate-sale referrals, and finding a smaller home " +
			"or community that still feels like their own.",
		Phone:           "(937) 555-0231",
		Email:           "ruth@alvarezrealty.com",
		Website:         "https://alvarezrealty.com",
		Credentials:     []string{"Seniors Real Estate Specialist (SRES)"},
		YearsExperience: 20,
		Initials:        "RA",
		Services:        []string{"downsizing", "staging", "family coordination"},
	},
}
