package usecase

import "smartagri/internal/domain/entity"

var diseaseCatalog = []entity.Disease{
	{
		ID:       1,
		Category: "Fungal",
		NameEn:   "Leaf Rust",
		NameMl:   "ഇല തുരുമ്പ് രോഗം",
		CropEn:   "Wheat",
		CropMl:   "ഗോതമ്പ്",
		RemedyEn: "Apply Propiconazole fungicide.",
		RemedyMl: "പ്രോപ്പിക്കൊണസോൾ എന്ന കുമിൾനാശിനി പ്രയോഗിക്കുക.",
		Severity: "Medium",
	},
	{
		ID:       2,
		Category: "Fungal",
		NameEn:   "Late Blight",
		NameMl:   "അംഗമാരി രോഗം",
		CropEn:   "Potato",
		CropMl:   "ഉരുളക്കിഴങ്ങ്",
		RemedyEn: "Ensure proper drainage and use copper-based spray.",
		RemedyMl: "നല്ല നീർവാർച്ച ഉറപ്പാക്കുകയും കോപ്പർ അധിഷ്ഠിത ലായനി തളിക്കുകയും ചെയ്യുക.",
		Severity: "High",
	},
	{
		ID:       3,
		Category: "Fungal",
		NameEn:   "Blast Disease",
		NameMl:   "കുലവാട്ടം",
		CropEn:   "Rice",
		CropMl:   "നെല്ല്",
		RemedyEn: "Avoid excess nitrogen; use Tricyclazole.",
		RemedyMl: "നൈട്രജൻ വളം അമിതമാകുന്നത് ഒഴിവാക്കുക; ട്രൈസൈക്ലസോൾ ഉപയോഗിക്കുക.",
		Severity: "High",
	},
	{
		ID:       4,
		Category: "Viral",
		NameEn:   "Mosaic Virus",
		NameMl:   "മൊസൈക് വൈറസ്",
		CropEn:   "Tomato",
		CropMl:   "തക്കാളി",
		RemedyEn: "Remove infected plants immediately; control aphids.",
		RemedyMl: "രോഗം ബാധിച്ച ചെടികൾ ഉടൻ നീക്കം ചെയ്യുക; മുഞ്ഞകളെ നിയന്ത്രിക്കുക.",
		Severity: "High",
	},
}

var subsidyCatalog = []entity.Subsidy{
	{
		ID:       1,
		TitleEn:  "Kuttanad Package 2.0",
		TitleMl:  "കുട്ടനാട് പാക്കേജ് 2.0",
		DeptEn:   "Dept. of Agriculture",
		DeptMl:   "കൃഷി വകുപ്പ്",
		Amount:   "₹2,50,000",
		Category: "Infrastructure",
		Deadline: "2026-03-15",
		Status:   "Open",
	},
	{
		ID:       2,
		TitleEn:  "Organic Manure Subsidy",
		TitleMl:  "ജൈവവള സബ്സിഡി",
		DeptEn:   "Krishi Bhavan",
		DeptMl:   "കൃഷി ഭവൻ",
		Amount:   "75% Subsidy",
		Category: "Organic",
		Deadline: "2026-04-01",
		Status:   "Open",
	},
	{
		ID:       3,
		TitleEn:  "PM-Kisan Samman Nidhi",
		TitleMl:  "പി.എം കിസാൻ",
		DeptEn:   "Central Govt",
		DeptMl:   "കേന്ദ്ര സർക്കാർ",
		Amount:   "₹6,000/year",
		Category: "Direct Benefit",
		Deadline: "Ongoing",
		Status:   "Active",
	},
}

var faqCatalog = []entity.FAQ{
	{
		QuestionEn: "How do I list my crop?",
		QuestionMl: "എന്റെ വിളകൾ എങ്ങനെ ലിസ്റ്റ് ചെയ്യാം?",
		AnswerEn:   "Go to the Market page, log in as a Farmer, and click 'Sell Crops'.",
		AnswerMl:   "മാർക്കറ്റ് പേജിൽ പോയി, കർഷകനായി ലോഗിൻ ചെയ്ത് 'Sell Crops' ക്ലിക്ക് ചെയ്യുക.",
	},
	{
		QuestionEn: "Is the Expert advice free?",
		QuestionMl: "വിദഗ്ധ ഉപദേശം സൗജന്യമാണോ?",
		AnswerEn:   "Most experts provide initial consultation for free, but specialized services may vary.",
		AnswerMl:   "മിക്ക വിദഗ്ധരും പ്രാരംഭ കൺസൾട്ടേഷൻ സൗജന്യമായി നൽകുന്നു.",
	},
	{
		QuestionEn: "How to track subsidy status?",
		QuestionMl: "സബ്സിഡി നില എങ്ങനെ അറിയാം?",
		AnswerEn:   "Check the 'Subsidy Status' section in your personal Dashboard.",
		AnswerMl:   "നിങ്ങളുടെ വ്യക്തിഗത ഡാഷ്‌ബോർഡിലെ 'സബ്സിഡി സ്റ്റാറ്റസ്' വിഭാഗം പരിശോധിക്കുക.",
	},
}
