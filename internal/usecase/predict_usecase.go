package usecase

import (
	"strings"

	"go-reskilling-backend/internal/domain"
	"go-reskilling-backend/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

// trainingRow is one labelled example of the static interest classifier.
// The rows are the original platform's embedded training set and keep its
// label vocabulary.
type trainingRow struct {
	CurrentRole string
	MainSkill   string
	SkillLevel  string
	Education   string
	Area        string
}

var interestTrainingSet = []trainingRow{
	{CurrentRole: "Analista de Dados", MainSkill: "SQL", SkillLevel: "Intermediário", Education: "TI", Area: "Cientista de Dados"},
	{CurrentRole: "Desenvolvedor Junior", MainSkill: "C#", SkillLevel: "Básico", Education: "TI", Area: "Desenvolvedor Backend"},
	{CurrentRole: "Designer", MainSkill: "UI Design", SkillLevel: "Intermediário", Education: "Design", Area: "UX/UI"},
	{CurrentRole: "Analista de Suporte", MainSkill: "Redes", SkillLevel: "Intermediário", Education: "TI", Area: "Infraestrutura"},
	{CurrentRole: "Professor", MainSkill: "Pedagogia", SkillLevel: "Avançado", Education: "Humanas", Area: "Docência"},
}

type predictUsecase struct {
	validate *validator.Validate
}

func NewPredictUsecase(validate *validator.Validate) domain.PredictUsecase {
	return &predictUsecase{validate: validate}
}

// PredictInterest scores every training row by token overlap with the
// input and returns the best row's area. The classifier is stateless and
// the same input always yields the same label.
func (u *predictUsecase) PredictInterest(req domain.PredictInterestRequest) (string, error) {
	if err := u.validate.Struct(req); err != nil {
		return "", apperror.BadRequest(err.Error())
	}

	input := tokenize(req.CurrentRole + " " + req.MainSkill + " " + req.SkillLevel + " " + req.Education)

	best := interestTrainingSet[0]
	bestScore := -1
	for _, row := range interestTrainingSet {
		score := overlap(input, tokenize(row.CurrentRole+" "+row.MainSkill+" "+row.SkillLevel+" "+row.Education))
		if score > bestScore {
			best = row
			bestScore = score
		}
	}
	return best.Area, nil
}

func tokenize(s string) map[string]struct{} {
	tokens := map[string]struct{}{}
	for _, t := range strings.Fields(strings.ToLower(s)) {
		tokens[t] = struct{}{}
	}
	return tokens
}

func overlap(a, b map[string]struct{}) int {
	n := 0
	for t := range a {
		if _, ok := b[t]; ok {
			n++
		}
	}
	return n
}
