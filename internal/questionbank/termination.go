package questionbank

import "nexaterminal/internal/model"

const CategoryTermination = "termination"

// Termination covers dismissal procedure, notice and severance
func Termination() *model.Bank {
	return &model.Bank{
		Topic: "termination",
		Title: "Престанок на договорот за вработување",
		CategoryNames: map[string]string{
			CategoryTermination: "Престанок на вработување",
		},
		Sanctions: defaultSanctions(),
		Grades:    defaultGrades(),
		Questions: []model.Question{
			{
				ID:             "term_written_notice",
				Category:       CategoryTermination,
				Text:           "Дали откажувањето на договорот за вработување секогаш се врши во писмена форма?",
				Article:        article("72"),
				Type:           model.AnswerTypeYesNo,
				CorrectAnswer:  model.AnswerYes,
				Weight:         3,
				SanctionLevel:  model.SanctionHigh,
				Recommendation: "Секое откажување на договорот за вработување доставувајте го писмено, со образложение и поука за правен лек.",
			},
			{
				ID:             "term_reasons",
				Category:       CategoryTermination,
				Text:           "Дали во откажувањето ги образложувате причините за престанок на договорот?",
				Article:        article("73"),
				Type:           model.AnswerTypeYesNo,
				CorrectAnswer:  model.AnswerYes,
				Weight:         2,
				SanctionLevel:  model.SanctionMedium,
				Recommendation: "Секое откажување на договорот за вработување доставувајте го писмено, со образложение и поука за правен лек.",
			},
			{
				ID:            "term_notice_period",
				Category:      CategoryTermination,
				Text:          "Колкав отказен рок применувате при откажување од деловни причини?",
				Article:       article("88"),
				Type:          model.AnswerTypeChoice,
				Weight:        3,
				SanctionLevel: model.SanctionHigh,
				Options: []model.Option{
					{Value: "none", Text: "Без отказен рок", IsCorrect: false},
					{Value: "less_than_month", Text: "Помалку од еден месец", IsCorrect: false},
					{Value: "one_month_or_more", Text: "Еден месец или подолго, согласно закон и колективен договор", IsCorrect: true},
				},
				Recommendation: "Применувајте отказен рок од најмалку еден месец при откажување од страна на работодавачот.",
			},
			{
				ID:             "term_prior_warning",
				Category:       CategoryTermination,
				Text:           "Дали пред откажување поради кршење на работниот ред писмено го предупредувате вработениот?",
				Article:        article("81"),
				Type:           model.AnswerTypeYesNo,
				CorrectAnswer:  model.AnswerYes,
				Weight:         2,
				SanctionLevel:  model.SanctionMedium,
				Recommendation: "Пред отказ поради лично однесување доставете писмено предупредување со рок за подобрување.",
			},
			{
				ID:             "term_hearing",
				Category:       CategoryTermination,
				Text:           "Дали на вработениот му овозможувате да се изјасни за наводите пред да донесете одлука за отказ поради кршење на работната дисциплина?",
				Article:        article("82"),
				Type:           model.AnswerTypeYesNo,
				CorrectAnswer:  model.AnswerYes,
				Weight:         2,
				SanctionLevel:  model.SanctionMedium,
				Recommendation: "Спроведете постапка во која вработениот може писмено да се изјасни пред донесување на одлуката.",
			},
			{
				ID:             "term_severance",
				Category:       CategoryTermination,
				Text:           "Дали исплаќате отпремнина при откажување на договорот од деловни причини?",
				Article:        article("97"),
				Type:           model.AnswerTypeYesNo,
				CorrectAnswer:  model.AnswerYes,
				Weight:         3,
				SanctionLevel:  model.SanctionHigh,
				Recommendation: "Пресметајте и исплатете отпремнина според стажот кај работодавачот при отказ од деловни причини.",
			},
			{
				ID:            "term_documents",
				Category:      CategoryTermination,
				Text:          "Што му доставувате на вработениот по престанокот на работниот однос?",
				Article:       article("70"),
				Type:          model.AnswerTypeMultiCheck,
				Weight:        2,
				SanctionLevel: model.SanctionMedium,
				Options: []model.Option{
					{Value: "deregistration", Text: "Одјава од задолжително социјално осигурување", IsCorrect: true},
					{Value: "final_pay", Text: "Конечна пресметка и исплата на плата и надоместоци", IsCorrect: true},
					{Value: "keep_documents", Text: "Ги задржуваме неговите лични документи до разрешување на спорот", IsCorrect: false},
				},
				Recommendation: "Навремено одјавете го вработениот од осигурување, исплатете ги сите побарувања и вратете ги личните документи.",
			},
			{
				ID:             "term_mass_dismissal",
				Category:       CategoryTermination,
				Text:           "При колективен отказ, дали ги известувате претставниците на вработените и Агенцијата за вработување?",
				Article:        article("95"),
				Type:           model.AnswerTypeYesNo,
				CorrectAnswer:  model.AnswerYes,
				Weight:         2,
				SanctionLevel:  model.SanctionHigh,
				Recommendation: "Пред колективен отказ спроведете консултации и писмено известете ја Агенцијата за вработување.",
			},
		},
	}
}
