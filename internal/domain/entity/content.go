package entity

// Disease is a static crop disease guide entry, stored bilingually.
type Disease struct {
	ID       int    `json:"id"`
	Category string `json:"category"`
	NameEn   string `json:"-"`
	NameMl   string `json:"-"`
	CropEn   string `json:"-"`
	CropMl   string `json:"-"`
	RemedyEn string `json:"-"`
	RemedyMl string `json:"-"`
	Severity string `json:"severity"`
}

type Subsidy struct {
	ID       int    `json:"id"`
	TitleEn  string `json:"-"`
	TitleMl  string `json:"-"`
	DeptEn   string `json:"-"`
	DeptMl   string `json:"-"`
	Amount   string `json:"amount"`
	Category string `json:"category"`
	Deadline string `json:"deadline"`
	Status   string `json:"status"`
}

type FAQ struct {
	QuestionEn string
	QuestionMl string
	AnswerEn   string
	AnswerMl   string
}

// Weather is a normalized current-conditions report.
// FixedLocation is true when the report is for the configured fallback city
// rather than the caller's own position.
type Weather struct {
	Temperature   float64 `json:"temperature"`
	Condition     string  `json:"condition"`
	Description   string  `json:"description"`
	IconID        string  `json:"icon_id"`
	LocationName  string  `json:"location_name"`
	FixedLocation bool    `json:"fixed_location"`
}
