package questionbank

import "nexaterminal/internal/model"

const (
	CategoryProtection        = "protection"
	CategorySpecialProtection = "special_protection"
)

// Protection covers anti-discrimination and harassment duties and the
// special protection of pregnant workers, parents, minors and persons
// with disabilities
func Protection() *model.Bank {
	return &model.Bank{
		Topic: "protection",
		Title: "Заштита на вработените",
		CategoryNames: map[string]string{
			CategoryProtection:        "Заштита од дискриминација и вознемирување",
			CategorySpecialProtection: "Посебна заштита",
		},
		Sanctions: defaultSanctions(),
		Grades:    defaultGrades(),
		Questions: []model.Question{
			{
				ID:             "prot_discrimination_ads",
				Category:       CategoryProtection,
				Text:           "Дали огласите за работа содржат услови поврзани со пол, возраст, брачен статус или друга лична карактеристика што не е услов за работното место?",
				Article:        article("6"),
				Type:           model.AnswerTypeYesNo,
				CorrectAnswer:  model.AnswerNo,
				Weight:         2,
				SanctionLevel:  model.SanctionHigh,
				Recommendation: "Отстранете ги дискриминаторските услови од огласите и постапките за вработување.",
			},
			{
				ID:             "prot_harassment_policy",
				Category:       CategoryProtection,
				Text:           "Дали имате донесено интерен акт за заштита од вознемирување и психичко малтретирање на работното место (мобинг)?",
				Article:        article("9-а"),
				Type:           model.AnswerTypeYesNo,
				CorrectAnswer:  model.AnswerYes,
				Weight:         2,
				SanctionLevel:  model.SanctionMedium,
				Recommendation: "Донесете интерна политика за заштита од мобинг и запознајте ги вработените со неа.",
			},
			{
				ID:             "prot_complaints",
				Category:       CategoryProtection,
				Text:           "Дали постои постапка преку која вработените можат да пријават вознемирување без последици по нив?",
				Article:        article("9-а"),
				Type:           model.AnswerTypeYesNo,
				CorrectAnswer:  model.AnswerYes,
				Weight:         2,
				SanctionLevel:  model.SanctionMedium,
				Recommendation: "Определете лице и постапка за пријавување на вознемирување и заштитете ги пријавувачите.",
			},
			{
				ID:             "prot_safety_training",
				Category:       CategoryProtection,
				Text:           "Дали вработените се оспособени за безбедна работа пред да бидат распоредени на работното место?",
				Article:        "член 29 од Законот за безбедност и здравје при работа",
				Type:           model.AnswerTypeYesNo,
				CorrectAnswer:  model.AnswerYes,
				Weight:         3,
				SanctionLevel:  model.SanctionHigh,
				Recommendation: "Спроведете оспособување за безбедна работа и чувајте евиденција за секој вработен.",
			},
			{
				ID:             "sp_pregnancy_dismissal",
				Category:       CategorySpecialProtection,
				Text:           "Дали сте откажале договор за вработување на работничка за време на бременост или отсуство поради раѓање и родителство?",
				Article:        article("101"),
				Type:           model.AnswerTypeYesNo,
				CorrectAnswer:  model.AnswerNo,
				Weight:         3,
				SanctionLevel:  model.SanctionHigh,
				Recommendation: "Не откажувајте договор за вработување за време на бременост, породилно отсуство и родителско отсуство.",
			},
			{
				ID:             "sp_pregnancy_hazard",
				Category:       CategorySpecialProtection,
				Text:           "Дали бремени работнички или доилки се распоредени на работи што се штетни по нивното здравје?",
				Article:        article("161"),
				Type:           model.AnswerTypeYesNo,
				CorrectAnswer:  model.AnswerNo,
				Weight:         3,
				SanctionLevel:  model.SanctionHigh,
				Recommendation: "Преместете ги бремените работнички и доилките на соодветно работно место без штетни влијанија.",
			},
			{
				ID:            "sp_maternity_leave",
				Category:      CategorySpecialProtection,
				Text:          "Колку трае отсуството поради бременост, раѓање и родителство што го овозможувате?",
				Article:       article("165"),
				Type:          model.AnswerTypeChoice,
				Weight:        3,
				SanctionLevel: model.SanctionHigh,
				Options: []model.Option{
					{Value: "nine_months", Text: "Девет месеци непрекинато (15 месеци за повеќе деца)", IsCorrect: true},
					{Value: "shorter", Text: "Пократко, по договор со работничката", IsCorrect: false},
				},
				Recommendation: "Овозможете отсуство поради бременост, раѓање и родителство во траење утврдено со закон.",
			},
			{
				ID:            "sp_minors",
				Category:      CategorySpecialProtection,
				Text:          "Кои правила ги применувате за вработените помлади од 18 години?",
				Article:       article("172"),
				Type:          model.AnswerTypeMultiCheck,
				Weight:        2,
				SanctionLevel: model.SanctionHigh,
				Options: []model.Option{
					{Value: "no_night", Text: "Не работат ноќе", IsCorrect: true},
					{Value: "no_overtime", Text: "Не работат прекувремено", IsCorrect: true},
					{Value: "hazardous", Text: "Работат на тешки и опасни работи", IsCorrect: false},
				},
				Recommendation: "Не распоредувајте малолетни работници на ноќна, прекувремена или опасна работа.",
			},
			{
				ID:             "sp_disability",
				Category:       CategorySpecialProtection,
				Text:           "Дали на вработените со попреченост им обезбедувате прилагодување на работното место?",
				Article:        article("175"),
				Type:           model.AnswerTypeYesNo,
				CorrectAnswer:  model.AnswerYes,
				Weight:         2,
				SanctionLevel:  model.SanctionNone,
				Recommendation: "Прилагодете ги работните места и работното време на потребите на вработените со попреченост.",
			},
		},
	}
}
