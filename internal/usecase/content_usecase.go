package usecase

import (
	"strings"

	"golang.org/x/text/language"

	"smartagri/pkg/i18n"
)

// ContentUseCase serves the static disease, subsidy and FAQ catalogs in the
// caller's language.
type ContentUseCase struct{}

func NewContentUseCase() *ContentUseCase {
	return &ContentUseCase{}
}

type DiseaseView struct {
	ID            int    `json:"id"`
	Category      string `json:"category"`
	Name          string `json:"name"`
	AlternateName string `json:"alternate_name"`
	Crop          string `json:"crop"`
	Remedy        string `json:"remedy"`
	Severity      string `json:"severity"`
}

type SubsidyView struct {
	ID         int    `json:"id"`
	Title      string `json:"title"`
	Department string `json:"department"`
	Amount     string `json:"amount"`
	Category   string `json:"category"`
	Deadline   string `json:"deadline"`
	Status     string `json:"status"`
}

type FAQView struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Diseases filters by category ("" or "All") and by search against the
// disease and crop names in both languages.
func (uc *ContentUseCase) Diseases(tag language.Tag, category, search string) []DiseaseView {
	views := make([]DiseaseView, 0, len(diseaseCatalog))
	for _, d := range diseaseCatalog {
		if !inCategory(category, d.Category) {
			continue
		}
		if !matches(search, d.NameEn, d.NameMl, d.CropEn, d.CropMl) {
			continue
		}

		alternate := d.NameMl
		if !i18n.IsEnglish(tag) {
			alternate = d.NameEn
		}
		views = append(views, DiseaseView{
			ID:            d.ID,
			Category:      d.Category,
			Name:          i18n.Pick(tag, d.NameEn, d.NameMl),
			AlternateName: alternate,
			Crop:          i18n.Pick(tag, d.CropEn, d.CropMl),
			Remedy:        i18n.Pick(tag, d.RemedyEn, d.RemedyMl),
			Severity:      d.Severity,
		})
	}
	return views
}

func (uc *ContentUseCase) Subsidies(tag language.Tag, category string) []SubsidyView {
	views := make([]SubsidyView, 0, len(subsidyCatalog))
	for _, s := range subsidyCatalog {
		if !inCategory(category, s.Category) {
			continue
		}
		views = append(views, SubsidyView{
			ID:         s.ID,
			Title:      i18n.Pick(tag, s.TitleEn, s.TitleMl),
			Department: i18n.Pick(tag, s.DeptEn, s.DeptMl),
			Amount:     s.Amount,
			Category:   s.Category,
			Deadline:   s.Deadline,
			Status:     s.Status,
		})
	}
	return views
}

func (uc *ContentUseCase) FAQs(tag language.Tag) []FAQView {
	views := make([]FAQView, 0, len(faqCatalog))
	for _, f := range faqCatalog {
		views = append(views, FAQView{
			Question: i18n.Pick(tag, f.QuestionEn, f.QuestionMl),
			Answer:   i18n.Pick(tag, f.AnswerEn, f.AnswerMl),
		})
	}
	return views
}

func inCategory(want, got string) bool {
	want = strings.TrimSpace(want)
	return want == "" || strings.EqualFold(want, "all") || strings.EqualFold(want, got)
}
