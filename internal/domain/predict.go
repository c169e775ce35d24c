package domain

// PredictInterestRequest is the input to the static interest classifier.
type PredictInterestRequest struct {
	CurrentRole string `json:"current_role" validate:"required"`
	MainSkill   string `json:"main_skill" validate:"required"`
	SkillLevel  string `json:"skill_level" validate:"required"`
	Education   string `json:"education" validate:"required"`
}

type PredictUsecase interface {
	PredictInterest(req PredictInterestRequest) (string, error)
}
